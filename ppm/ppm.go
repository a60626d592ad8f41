// Package ppm implements the dispatch stub for the Netpbm PPM/PGM binary
// formats (P6/P5): a textual header of magic, whitespace-separated width,
// height and maxval, with '#' starting a comment that runs to end of line.
// Pixel decoding is out of scope; see decoder.go.
package ppm

import "github.com/pkg/errors"

var errTruncated = errors.New("ppm: header ended before width/height were found")

// parseHeader walks the textual header far enough to recover width and
// height, skipping whitespace and '#' comments per the Netpbm "plain
// header" grammar. It assumes the 2-byte magic has already been consumed.
func parseHeader(data []byte) (width, height int, err error) {
	pos := 0
	readToken := func() (string, error) {
		for {
			for pos < len(data) && isSpace(data[pos]) {
				pos++
			}
			if pos < len(data) && data[pos] == '#' {
				for pos < len(data) && data[pos] != '\n' {
					pos++
				}
				continue
			}
			break
		}
		start := pos
		for pos < len(data) && !isSpace(data[pos]) {
			pos++
		}
		if start == pos {
			return "", errTruncated
		}
		return string(data[start:pos]), nil
	}

	wTok, err := readToken()
	if err != nil {
		return 0, 0, err
	}
	hTok, err := readToken()
	if err != nil {
		return 0, 0, err
	}
	width, err = atoi(wTok)
	if err != nil {
		return 0, 0, err
	}
	height, err = atoi(hTok)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, errTruncated
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.Errorf("ppm: %q is not a decimal integer", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
