// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package png implements a PNG chunk encoder over packed RGB/RGBA pixel
// buffers, the same input shape the qoi package consumes. Decoding is
// limited to reading the IHDR header; see decoder.go and DESIGN.md for why.
package png

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
	"strconv"

	"github.com/pkg/errors"

	ourcrc32 "github.com/rmamba/stillimage/crc32"
	"github.com/rmamba/stillimage/qoi"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// CompressionLevel mirrors zlib's levels without exposing the zlib package
// in this package's public API.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

func levelToZlib(l CompressionLevel) int {
	switch l {
	case DefaultCompression:
		return zlib.DefaultCompression
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

// colorType is PNG's IHDR color type byte. This package only ever emits
// truecolor (2) or truecolor-with-alpha (6); the grayscale and palette
// paths the original image/png supported have no counterpart in the
// RGB/RGBA world this module's formats share, and are dropped rather than
// carried forward unused — see DESIGN.md.
type colorType uint8

const (
	ctTrueColor      colorType = 2
	ctTrueColorAlpha colorType = 6
)

// Row filter types, PNG spec section 9.2.
const (
	ftNone = iota
	ftSub
	ftUp
	ftAverage
	ftPaeth
	nFilter
)

// Encoder configures one Encode call. Its zero value is the default
// compression level.
type Encoder struct {
	CompressionLevel CompressionLevel
}

type encoder struct {
	enc    Encoder
	w      io.Writer
	header [8]byte
	footer [4]byte
	tmp    [4 * 256]byte
	cr     [nFilter][]uint8
	pr     []uint8
	err    error
}

// abs8 is the absolute value of a byte interpreted as a signed int8.
func abs8(d uint8) int {
	if d < 128 {
		return int(d)
	}
	return 256 - int(d)
}

// paeth is the PNG Paeth predictor (spec section 9.4).
func paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := absInt(p-int(a)), absInt(p-int(b)), absInt(p-int(c))
	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (e *encoder) writeChunk(b []byte, name string) {
	if e.err != nil {
		return
	}
	n := uint32(len(b))
	if int(n) != len(b) {
		e.err = UnsupportedError(name + " chunk is too large: " + strconv.Itoa(len(b)))
		return
	}
	binary.BigEndian.PutUint32(e.header[:4], n)
	e.header[4], e.header[5], e.header[6], e.header[7] = name[0], name[1], name[2], name[3]

	crc := ourcrc32.Checksum(e.header[4:8], 0xFFFFFFFF)
	crc = ourcrc32.Checksum(b, crc) ^ 0xFFFFFFFF
	binary.BigEndian.PutUint32(e.footer[:4], crc)

	if _, e.err = e.w.Write(e.header[:8]); e.err != nil {
		return
	}
	if _, e.err = e.w.Write(b); e.err != nil {
		return
	}
	_, e.err = e.w.Write(e.footer[:4])
}

func (e *encoder) writeIHDR(width, height int, ct colorType) {
	binary.BigEndian.PutUint32(e.tmp[0:4], uint32(width))
	binary.BigEndian.PutUint32(e.tmp[4:8], uint32(height))
	e.tmp[8] = 8 // bit depth: this package only handles 8-bit channels
	e.tmp[9] = byte(ct)
	e.tmp[10] = 0 // compression method
	e.tmp[11] = 0 // filter method
	e.tmp[12] = 0 // non-interlaced
	e.writeChunk(e.tmp[:13], "IHDR")
}

func (e *encoder) maybeWriteGAMA(m *Metadata) {
	if m == nil || m.Gamma == nil || e.err != nil {
		return
	}
	binary.BigEndian.PutUint32(e.tmp[:4], *m.Gamma)
	e.writeChunk(e.tmp[:4], "gAMA")
}

func (e *encoder) maybeWriteSRGB(m *Metadata) {
	if m == nil || m.SRGBIntent == nil || e.err != nil {
		return
	}
	e.tmp[0] = *m.SRGBIntent
	e.writeChunk(e.tmp[:1], "sRGB")
}

func (e *encoder) maybeWriteTIME(m *Metadata) {
	if m == nil || m.LastModified == nil || e.err != nil {
		return
	}
	utc := m.LastModified.UTC()
	binary.BigEndian.PutUint16(e.tmp[:2], uint16(utc.Year()))
	e.tmp[2] = byte(utc.Month())
	e.tmp[3] = byte(utc.Day())
	e.tmp[4] = byte(utc.Hour())
	e.tmp[5] = byte(utc.Minute())
	e.tmp[6] = byte(utc.Second())
	e.writeChunk(e.tmp[:7], "tIME")
}

func (e *encoder) pngCompress(input []byte) ([]byte, error) {
	var b bytes.Buffer
	zw, err := zlib.NewWriterLevel(&b, levelToZlib(e.enc.CompressionLevel))
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(input); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (e *encoder) maybeWriteTEXT(t *TextEntry) {
	if e.err != nil {
		return
	}
	switch t.EntryType {
	case EtText:
		buf := make([]byte, len(t.Key)+1+len(t.Value))
		copy(buf, t.Key)
		copy(buf[len(t.Key)+1:], t.Value)
		e.writeChunk(buf, "tEXt")
	case EtZtext:
		val, err := e.pngCompress([]byte(t.Value))
		if err != nil {
			e.err = err
			return
		}
		buf := make([]byte, len(t.Key)+2+len(val))
		copy(buf, t.Key)
		buf[len(t.Key)+1] = 0 // compression method: deflate
		copy(buf[len(t.Key)+2:], val)
		e.writeChunk(buf, "zTXt")
	case EtItext:
		val, err := e.pngCompress([]byte(t.Value))
		if err != nil {
			e.err = err
			return
		}
		buf := make([]byte, 0, len(t.Key)+len(val)+len(t.LanguageTag)+len(t.TranslatedKey)+5)
		buf = append(buf, t.Key...)
		buf = append(buf, 0, 1, 0) // key terminator, compressed=1, method=deflate
		buf = append(buf, t.LanguageTag...)
		buf = append(buf, 0)
		buf = append(buf, t.TranslatedKey...)
		buf = append(buf, 0)
		buf = append(buf, val...)
		e.writeChunk(buf, "iTXt")
	}
}

func (e *encoder) writeIEND() { e.writeChunk(nil, "IEND") }

// filter picks and applies the row filter that minimizes the sum of
// absolute differences, trying all five in the order libpng estimates as
// most likely to win (Up, Paeth, None, Sub, Average).
func filter(cr *[nFilter][]byte, pr []byte, bpp int) int {
	cdat0, cdat1, cdat2, cdat3, cdat4 := cr[0][1:], cr[1][1:], cr[2][1:], cr[3][1:], cr[4][1:]
	pdat := pr[1:]
	n := len(cdat0)

	sum := 0
	for i := 0; i < n; i++ {
		cdat2[i] = cdat0[i] - pdat[i]
		sum += abs8(cdat2[i])
	}
	best := sum
	chosen := ftUp

	sum = 0
	for i := 0; i < bpp; i++ {
		cdat4[i] = cdat0[i] - pdat[i]
		sum += abs8(cdat4[i])
	}
	for i := bpp; i < n; i++ {
		cdat4[i] = cdat0[i] - paeth(cdat0[i-bpp], pdat[i], pdat[i-bpp])
		sum += abs8(cdat4[i])
		if sum >= best {
			break
		}
	}
	if sum < best {
		best, chosen = sum, ftPaeth
	}

	sum = 0
	for i := 0; i < n; i++ {
		sum += abs8(cdat0[i])
		if sum >= best {
			break
		}
	}
	if sum < best {
		best, chosen = sum, ftNone
	}

	sum = 0
	for i := 0; i < bpp; i++ {
		cdat1[i] = cdat0[i]
		sum += abs8(cdat1[i])
	}
	for i := bpp; i < n; i++ {
		cdat1[i] = cdat0[i] - cdat0[i-bpp]
		sum += abs8(cdat1[i])
		if sum >= best {
			break
		}
	}
	if sum < best {
		best, chosen = sum, ftSub
	}

	sum = 0
	for i := 0; i < bpp; i++ {
		cdat3[i] = cdat0[i] - pdat[i]/2
		sum += abs8(cdat3[i])
	}
	for i := bpp; i < n; i++ {
		cdat3[i] = cdat0[i] - uint8((int(cdat0[i-bpp])+int(pdat[i]))/2)
		sum += abs8(cdat3[i])
		if sum >= best {
			break
		}
	}
	if sum < best {
		chosen = ftAverage
	}

	return chosen
}

func zeroMemory(v []uint8) {
	for i := range v {
		v[i] = 0
	}
}

func (e *encoder) writeImage(w io.Writer, pixels []byte, width, height int, bpp int, level int) error {
	zw, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return err
	}
	defer zw.Close()

	bitsPerPixel := bpp * 8
	sz := 1 + (bitsPerPixel*width+7)/8
	for i := range e.cr {
		e.cr[i] = make([]uint8, sz)
		e.cr[i][0] = uint8(i)
	}
	cr := e.cr
	e.pr = make([]uint8, sz)
	pr := e.pr

	stride := width * bpp
	for y := 0; y < height; y++ {
		copy(cr[0][1:], pixels[y*stride:y*stride+stride])

		f := ftNone
		if level != zlib.NoCompression {
			f = filter(&cr, pr, bpp)
		}
		if _, err := zw.Write(cr[f]); err != nil {
			return err
		}
		pr, cr[0] = cr[0], pr
	}
	return nil
}

type idatWriter struct{ e *encoder }

func (w idatWriter) Write(b []byte) (int, error) {
	w.e.writeChunk(b, "IDAT")
	if w.e.err != nil {
		return 0, w.e.err
	}
	return len(b), nil
}

func colorTypeAndBpp(cs qoi.ColorSpace) (colorType, int, error) {
	switch cs {
	case qoi.RGB:
		return ctTrueColor, 3, nil
	case qoi.RGBA:
		return ctTrueColorAlpha, 4, nil
	default:
		return 0, 0, FormatError("unsupported colorspace for PNG encoding: " + cs.String())
	}
}

// Encode writes pixels (packed RGB or RGBA bytes, row-major, no padding) as
// a PNG to w. meta may be nil; any non-nil fields it carries are written as
// the corresponding ancillary chunks.
func Encode(w io.Writer, enc Encoder, pixels []byte, width, height int, cs qoi.ColorSpace, meta *Metadata) error {
	if width <= 0 || height <= 0 {
		return FormatError("invalid image size: " + strconv.Itoa(width) + "x" + strconv.Itoa(height))
	}
	ct, bpp, err := colorTypeAndBpp(cs)
	if err != nil {
		return err
	}
	if len(pixels) != width*height*bpp {
		return FormatError("pixel buffer length does not match width*height*channels")
	}
	if err := meta.validate(); err != nil {
		return errors.Wrap(err, "png: invalid metadata")
	}

	e := &encoder{enc: enc, w: w}

	if _, e.err = io.WriteString(w, pngHeader); e.err != nil {
		return e.err
	}
	e.writeIHDR(width, height, ct)

	e.maybeWriteGAMA(meta)
	e.maybeWriteSRGB(meta)
	e.maybeWriteTIME(meta)
	if meta != nil {
		for _, t := range meta.Text {
			e.maybeWriteTEXT(t)
		}
	}

	if e.err == nil {
		bw := bufio.NewWriterSize(idatWriter{e}, 1<<15)
		if err := e.writeImage(bw, pixels, width, height, bpp, levelToZlib(enc.CompressionLevel)); err != nil {
			e.err = errors.Wrap(err, "png: writing IDAT stream")
		} else if err := bw.Flush(); err != nil {
			e.err = errors.Wrap(err, "png: flushing IDAT stream")
		}
	}

	e.writeIEND()
	return e.err
}
