package psd_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmamba/stillimage/format"
)

func fixture(w, h uint32) []byte {
	buf := make([]byte, 26)
	copy(buf, "8BPS")
	binary.BigEndian.PutUint16(buf[4:6], 1) // version
	binary.BigEndian.PutUint16(buf[12:14], 3)
	binary.BigEndian.PutUint32(buf[14:18], h)
	binary.BigEndian.PutUint32(buf[18:22], w)
	binary.BigEndian.PutUint16(buf[22:24], 8)
	binary.BigEndian.PutUint16(buf[24:26], 3)
	return buf
}

func TestDecodeHeadersReadsDimensions(t *testing.T) {
	dec, err := format.Open(fixture(640, 480))
	require.NoError(t, err)
	hdr, err := dec.DecodeHeaders()
	require.NoError(t, err)
	require.Equal(t, 640, hdr.Width)
	require.Equal(t, 480, hdr.Height)
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	data := fixture(1, 1)[:10]
	dec, err := format.Open(data)
	require.NoError(t, err) // the "8BPS" prefix alone is enough for GuessFormat to match
	_, err = dec.DecodeHeaders()
	require.Error(t, err)
}

func TestDecodeReturnsNotImplemented(t *testing.T) {
	dec, err := format.Open(fixture(1, 1))
	require.NoError(t, err)
	require.ErrorIs(t, dec.Decode(), format.ErrNotImplemented)
}
