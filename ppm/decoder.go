//go:build !noformat_ppm

package ppm

import (
	"github.com/rmamba/stillimage/format"
)

func init() {
	format.Register(format.PPM, func(data []byte) format.Decoder {
		return &Decoder{data: data}
	})
}

// Decoder reads a P6/P5 textual header. Decode is unimplemented.
type Decoder struct {
	data   []byte
	width  int
	height int
}

func (d *Decoder) DecodeHeaders() (format.Header, error) {
	if len(d.data) < 2 || d.data[0] != 'P' || (d.data[1] != '6' && d.data[1] != '5') {
		return format.Header{}, errTruncated
	}
	w, h, err := parseHeader(d.data[2:])
	if err != nil {
		return format.Header{}, err
	}
	d.width, d.height = w, h
	return format.Header{Width: w, Height: h}, nil
}

func (d *Decoder) Decode() error { return format.ErrNotImplemented }

func (d *Decoder) Dimensions() (width, height int) { return d.width, d.height }
