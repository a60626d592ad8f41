//go:build !noformat_png

package png

import (
	"encoding/binary"

	"github.com/rmamba/stillimage/format"
)

func init() {
	format.Register(format.PNG, func(data []byte) format.Decoder {
		return &Decoder{data: data}
	})
}

// Decoder reads only the IHDR chunk's width and height. Full pixel
// decoding is out of scope for this module; Decode always fails with
// format.ErrNotImplemented.
type Decoder struct {
	data   []byte
	width  int
	height int
}

// DecodeHeaders validates the 8-byte signature and parses the IHDR chunk
// that must immediately follow it.
func (d *Decoder) DecodeHeaders() (format.Header, error) {
	if len(d.data) < len(pngHeader)+8+13+4 {
		return format.Header{}, FormatError("too short to contain a signature and IHDR chunk")
	}
	if string(d.data[:len(pngHeader)]) != pngHeader {
		return format.Header{}, FormatError("missing PNG signature")
	}

	chunkStart := len(pngHeader)
	length := binary.BigEndian.Uint32(d.data[chunkStart : chunkStart+4])
	name := string(d.data[chunkStart+4 : chunkStart+8])
	if name != "IHDR" || length != 13 {
		return format.Header{}, FormatError("first chunk is not a 13-byte IHDR")
	}

	body := d.data[chunkStart+8 : chunkStart+8+13]
	d.width = int(binary.BigEndian.Uint32(body[0:4]))
	d.height = int(binary.BigEndian.Uint32(body[4:8]))
	return format.Header{Width: d.width, Height: d.height}, nil
}

// Decode always fails: this module only implements PNG encoding and
// IHDR-level sniffing.
func (d *Decoder) Decode() error { return format.ErrNotImplemented }

// Dimensions returns the width and height found by a prior DecodeHeaders
// call, or zero values if it was never called or failed.
func (d *Decoder) Dimensions() (width, height int) { return d.width, d.height }
