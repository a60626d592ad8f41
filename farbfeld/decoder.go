//go:build !noformat_farbfeld

package farbfeld

import (
	"encoding/binary"

	"github.com/rmamba/stillimage/format"
)

func init() {
	format.Register(format.Farbfeld, func(data []byte) format.Decoder {
		return &Decoder{data: data}
	})
}

// Decoder reads farbfeld's fixed header. Decode is unimplemented.
type Decoder struct {
	data   []byte
	width  int
	height int
}

func (d *Decoder) DecodeHeaders() (format.Header, error) {
	if len(d.data) < headerSize {
		return format.Header{}, errTruncated
	}
	if string(d.data[:len(magic)]) != magic {
		return format.Header{}, errBadMagic
	}
	d.width = int(binary.BigEndian.Uint32(d.data[8:12]))
	d.height = int(binary.BigEndian.Uint32(d.data[12:16]))
	return format.Header{Width: d.width, Height: d.height}, nil
}

func (d *Decoder) Decode() error { return format.ErrNotImplemented }

func (d *Decoder) Dimensions() (width, height int) { return d.width, d.height }
