// Package jpeg implements the dispatch stub for JPEG: enough marker
// scanning to find the first SOF (start-of-frame) segment and read its
// height and width. Pixel decoding is out of scope; see decoder.go.
package jpeg

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	markerSOI = 0xD8
	markerEOI = 0xD9
	markerSOS = 0xDA
)

// isSOF reports whether marker m is one of the start-of-frame markers
// (baseline, extended sequential, progressive, lossless, and their
// arithmetic-coded/differential variants). JPEG reserves 0xC0-0xCF for
// SOFn, except 0xC4 (DHT), 0xC8 (JPG, reserved) and 0xCC (DAC).
func isSOF(m byte) bool {
	if m < 0xC0 || m > 0xCF {
		return false
	}
	return m != 0xC4 && m != 0xC8 && m != 0xCC
}

var (
	errTruncated = errors.New("jpeg: input ends before an SOF marker was found")
	errBadMagic  = errors.New("jpeg: missing SOI marker")
	errNoSOF     = errors.New("jpeg: no start-of-frame marker found before end of image")
)

// dimensions scans data for the first SOF segment and returns the frame's
// width and height. On the wire the segment stores height before width
// (precision, height, width, component count).
func dimensions(data []byte) (width, height int, err error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI {
		return 0, 0, errBadMagic
	}
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return 0, 0, errors.Errorf("jpeg: expected marker prefix at offset %d", pos)
		}
		marker := data[pos+1]
		pos += 2
		if marker == markerEOI {
			return 0, 0, errNoSOF
		}
		if marker == markerSOS {
			return 0, 0, errNoSOF
		}
		if pos+2 > len(data) {
			return 0, 0, errTruncated
		}
		segLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		if segLen < 2 || pos+segLen > len(data) {
			return 0, 0, errTruncated
		}
		if isSOF(marker) {
			if segLen < 7 {
				return 0, 0, errors.New("jpeg: SOF segment too short")
			}
			height = int(binary.BigEndian.Uint16(data[pos+3 : pos+5]))
			width = int(binary.BigEndian.Uint16(data[pos+5 : pos+7]))
			return width, height, nil
		}
		pos += segLen
	}
	return 0, 0, errTruncated
}
