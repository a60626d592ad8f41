// Package farbfeld implements the dispatch stub for the farbfeld format: a
// trivial fixed 16-byte header (8-byte magic, big-endian width, big-endian
// height) followed by raw 16-bit-per-channel RGBA pixels. Pixel decoding is
// out of scope; see decoder.go.
package farbfeld

const (
	magic      = "farbfeld"
	headerSize = len(magic) + 4 + 4
)
