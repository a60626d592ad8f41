package stillimage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmamba/stillimage"
	"github.com/rmamba/stillimage/png"
	"github.com/rmamba/stillimage/qoi"
)

func TestOpenDispatchesToRegisteredPNGDecoder(t *testing.T) {
	pixels := make([]byte, 4*4*3)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, png.Encoder{}, pixels, 4, 4, qoi.RGB, nil))

	dec, err := stillimage.Open(buf.Bytes())
	require.NoError(t, err)
	hdr, err := dec.DecodeHeaders()
	require.NoError(t, err)
	require.Equal(t, 4, hdr.Width)
	require.Equal(t, 4, hdr.Height)
}

func TestGuessFormatFarbfeld(t *testing.T) {
	data := append([]byte("farbfeld"), make([]byte, 8)...)
	tag, ok := stillimage.GuessFormat(data)
	require.True(t, ok)
	require.Equal(t, stillimage.Farbfeld, tag)
}

func TestOpenUnrecognizedReturnsError(t *testing.T) {
	_, err := stillimage.Open([]byte("not an image"))
	require.Error(t, err)
}
