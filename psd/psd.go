// Package psd implements the dispatch stub for Adobe Photoshop's PSD
// format: a fixed binary file header (signature, version, 6 reserved
// bytes, channel count, height, width, depth, color mode). Pixel decoding
// is out of scope; see decoder.go.
package psd

const (
	signature  = "8BPS"
	headerSize = 26
)
