package ppm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmamba/stillimage/format"
)

func TestDecodeHeadersParsesPPM(t *testing.T) {
	data := []byte("P6\n# a comment\n10 20\n255\n\x00")
	dec, err := format.Open(data)
	require.NoError(t, err)
	hdr, err := dec.DecodeHeaders()
	require.NoError(t, err)
	require.Equal(t, 10, hdr.Width)
	require.Equal(t, 20, hdr.Height)
}

func TestDecodeHeadersParsesPGM(t *testing.T) {
	data := []byte("P5\n4 4\n255\n")
	dec, err := format.Open(data)
	require.NoError(t, err)
	hdr, err := dec.DecodeHeaders()
	require.NoError(t, err)
	require.Equal(t, 4, hdr.Width)
	require.Equal(t, 4, hdr.Height)
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	dec, err := format.Open([]byte("P6\n10"))
	require.NoError(t, err)
	_, err = dec.DecodeHeaders()
	require.Error(t, err)
}

func TestDecodeReturnsNotImplemented(t *testing.T) {
	dec, err := format.Open([]byte("P6\n1 1\n255\n"))
	require.NoError(t, err)
	require.ErrorIs(t, dec.Decode(), format.ErrNotImplemented)
}
