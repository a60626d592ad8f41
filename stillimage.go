// Package stillimage is the library's entry point: it blank-imports every
// per-format package so their init() functions register with the format
// package, then re-exports the sniffer and dispatch entry points. Importing
// this package (rather than format directly) is how a caller opts into the
// full format set; a caller that wants a trimmed build imports format and
// the specific per-format packages it needs instead, compiled with the
// matching noformat_* build tags on everything else.
package stillimage

import (
	_ "github.com/rmamba/stillimage/farbfeld"
	_ "github.com/rmamba/stillimage/jpeg"
	_ "github.com/rmamba/stillimage/png"
	_ "github.com/rmamba/stillimage/ppm"
	_ "github.com/rmamba/stillimage/psd"

	"github.com/rmamba/stillimage/format"
)

// FormatTag identifies a recognized still-image container format.
type FormatTag = format.FormatTag

// Header is the pixel-free information a stub decoder can report.
type Header = format.Header

// Decoder is the capability set every per-format package implements.
type Decoder = format.Decoder

const (
	PNG      = format.PNG
	JPEG     = format.JPEG
	PPM      = format.PPM
	PSD      = format.PSD
	Farbfeld = format.Farbfeld
)

// GuessFormat classifies data by its leading bytes.
func GuessFormat(data []byte) (FormatTag, bool) {
	return format.GuessFormat(data)
}

// Open sniffs data and dispatches to the registered decoder for its
// format.
func Open(data []byte) (Decoder, error) {
	return format.Open(data)
}
