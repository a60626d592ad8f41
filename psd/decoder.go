//go:build !noformat_psd

package psd

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/rmamba/stillimage/format"
)

func init() {
	format.Register(format.PSD, func(data []byte) format.Decoder {
		return &Decoder{data: data}
	})
}

var (
	errTruncated = errors.New("psd: header shorter than 26 bytes")
	errBadMagic  = errors.New("psd: missing \"8BPS\" signature")
)

// Decoder reads the PSD file header (signature through width). Decode is
// unimplemented.
type Decoder struct {
	data   []byte
	width  int
	height int
}

// DecodeHeaders parses the fixed 26-byte file header:
//
//	0:4   signature "8BPS"
//	4:6   version (1 for PSD, 2 for PSB)
//	6:12  reserved, must be zero
//	12:14 channel count
//	14:18 height
//	18:22 width
//	22:24 bit depth
//	24:26 color mode
func (d *Decoder) DecodeHeaders() (format.Header, error) {
	if len(d.data) < headerSize {
		return format.Header{}, errTruncated
	}
	if string(d.data[:4]) != signature {
		return format.Header{}, errBadMagic
	}
	d.height = int(binary.BigEndian.Uint32(d.data[14:18]))
	d.width = int(binary.BigEndian.Uint32(d.data[18:22]))
	return format.Header{Width: d.width, Height: d.height}, nil
}

func (d *Decoder) Decode() error { return format.ErrNotImplemented }

func (d *Decoder) Dimensions() (width, height int) { return d.width, d.height }
