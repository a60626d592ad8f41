//go:build !noformat_jpeg

package jpeg

import (
	"github.com/rmamba/stillimage/format"
)

func init() {
	format.Register(format.JPEG, func(data []byte) format.Decoder {
		return &Decoder{data: data}
	})
}

// Decoder scans for the first SOF marker to report dimensions. Decode is
// unimplemented.
type Decoder struct {
	data   []byte
	width  int
	height int
}

func (d *Decoder) DecodeHeaders() (format.Header, error) {
	w, h, err := dimensions(d.data)
	if err != nil {
		return format.Header{}, err
	}
	d.width, d.height = w, h
	return format.Header{Width: w, Height: h}, nil
}

func (d *Decoder) Decode() error { return format.ErrNotImplemented }

func (d *Decoder) Dimensions() (width, height int) { return d.width, d.height }
