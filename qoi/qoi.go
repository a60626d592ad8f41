// Package qoi implements a QOI (Quite OK Image) encoder: a whole-buffer,
// single-pass transform from packed RGB/RGBA pixel bytes into the QOI wire
// format. There is no decoder and no streaming variant — see SPEC_FULL.md
// sections 1 and 9 for why.
package qoi

import (
	"math"

	"github.com/rmamba/stillimage/bytewriter"
)

const (
	qoiMagic   uint32 = 0x716f6966 // ASCII "qoif"
	headerSize        = 14
	padding           = 8
)

// Opcode tags, per spec.md §4.3.5. The two-bit RUN/INDEX/DIFF/LUMA
// discriminator never collides with the all-ones RGB/RGBA tags because a
// run length is biased by one and capped at 62, so its low six bits never
// reach 0b111110 or 0b111111.
const (
	opIndex uint8 = 0x00 // 0b00_000000
	opDiff  uint8 = 0x40 // 0b01_000000
	opLuma  uint8 = 0x80 // 0b10_000000
	opRun   uint8 = 0xC0 // 0b11_000000
	opRGB   uint8 = 0xFE
	opRGBA  uint8 = 0xFF
)

const maxRun = 62

// pixel is a 4-byte RGBA value. Array equality is used throughout to
// compare running/candidate pixels, matching the wire format's
// INDEX/DIFF/LUMA/RGB/RGBA selection logic.
type pixel [4]byte

// Encoder transforms one packed pixel buffer into a QOI byte stream.
// It is created fresh per call and discarded afterward; it holds no state
// that outlives a single Encode/EncodeInto call other than the caller's
// pixel slice and options.
type Encoder struct {
	pixels     []byte
	options    EncoderOptions
	colorChars ColorCharacteristics
}

// New records the pixel buffer and options for a later encode. No
// validation happens here; validation is deferred to EncodeInto's header
// stage so that New can be a plain, infallible constructor.
func New(pixels []byte, options EncoderOptions) *Encoder {
	return &Encoder{
		pixels:     pixels,
		options:    options,
		colorChars: SRGB,
	}
}

// SetColorCharacteristics overrides the default sRGB characteristic. It
// affects only the single colorspace byte in the header.
func (e *Encoder) SetColorCharacteristics(c ColorCharacteristics) {
	e.colorChars = c
}

// MaxSize returns an upper bound on the encoded length: the worst case
// where every pixel expands to an RGBA opcode.
func (e *Encoder) MaxSize() int {
	channels, ok := e.options.Colorspace.channels()
	if !ok {
		// An unsupported colorspace has no defined channel count; fall
		// back to the widest (RGBA) so callers sizing a buffer ahead of
		// an Encode call that will itself fail never under-allocate.
		channels = 4
	}
	return int(e.options.Width)*int(e.options.Height)*(channels+1) + headerSize + padding
}

// encodeHeader validates inputs and writes the 14-byte header. Colorspace
// support is checked first: this Go port's ColorSpace is a closed
// RGB/RGBA enum, so channels() has no fallback component count for an
// unsupported value the way the wider colorspace enum in the original
// source does (it returns (0, false), which would otherwise make the
// length check below compare against an expected length of zero and
// mask the colorspace error behind a misleading length-mismatch one for
// any non-empty buffer). Length and dimension checks follow.
func (e *Encoder) encodeHeader(w *bytewriter.Writer) error {
	channels, ok := e.options.Colorspace.channels()
	if !ok {
		return ErrUnsupportedColorspace{Got: e.options.Colorspace, Allowed: []ColorSpace{RGB, RGBA}}
	}

	expected := e.options.Width * e.options.Height * uint64(channels)
	if uint64(len(e.pixels)) != expected {
		return ErrGeneric("length mismatch")
	}

	if e.options.Width > math.MaxUint32 {
		return ErrTooLargeDimensions{Dimension: e.options.Width}
	}
	if e.options.Height > math.MaxUint32 {
		return ErrTooLargeDimensions{Dimension: e.options.Height}
	}

	if !w.Has(headerSize) {
		return ErrGeneric("cannot allocate header space")
	}

	w.WriteU32BE(qoiMagic)
	w.WriteU32BE(uint32(e.options.Width))
	w.WriteU32BE(uint32(e.options.Height))
	w.WriteU8(uint8(channels))
	w.WriteU8(boolToByte(e.colorChars == Linear))
	return nil
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// EncodeInto encodes into buf and returns the number of bytes written. buf
// must be at least MaxSize() long for encoding to be guaranteed to
// succeed; a shorter buffer may still succeed for inputs that compress
// well, or fail with ErrGeneric if it runs out of room.
func (e *Encoder) EncodeInto(buf []byte) (int, error) {
	w := bytewriter.New(buf)

	if err := e.encodeHeader(w); err != nil {
		return 0, err
	}

	channels, _ := e.options.Colorspace.channels()

	var index [64]pixel
	prev := pixel{0, 0, 0, 255}
	px := pixel{0, 0, 0, 255}
	run := 0

	for i := 0; i+channels <= len(e.pixels); i += channels {
		copy(px[:channels], e.pixels[i:i+channels])
		// RGB input never supplies alpha: px[3] simply keeps whatever it
		// already held (255, forever, since nothing ever writes it for a
		// 3-channel buffer). This matches the QOI spec but is a latent
		// footgun if a future change mixes channel counts — see
		// SPEC_FULL.md §9.

		if !w.Has(5) {
			return 0, ErrGeneric("not enough space")
		}

		if px == prev {
			run++
			if run == maxRun {
				w.WriteU8(opRun | uint8(run-1))
				run = 0
			}
		} else {
			if run > 0 {
				// The run flush comes on top of the up to five bytes
				// this pixel may need.
				if !w.Has(1 + 5) {
					return 0, ErrGeneric("not enough space")
				}
				w.WriteU8(opRun | uint8(run-1))
				run = 0
			}

			hash := (uint16(px[0])*3 + uint16(px[1])*5 + uint16(px[2])*7 + uint16(px[3])*11) % 64

			if index[hash] == px {
				w.WriteU8(opIndex | uint8(hash))
			} else {
				index[hash] = px
				encodeNonIndexed(w, px, prev)
			}
		}

		prev = px
	}

	trailer := padding
	if run > 0 {
		trailer++
	}
	if !w.Has(trailer) {
		return 0, ErrGeneric("not enough space")
	}

	if run > 0 {
		w.WriteU8(opRun | uint8(run-1))
	}

	w.WriteU64BE(1)

	return w.Position(), nil
}

// encodeNonIndexed picks and emits exactly one of DIFF, LUMA, RGB or RGBA
// for px, given that it missed the index table. The four cases are
// mutually exclusive: an alpha change always gives RGBA; otherwise DIFF,
// then LUMA, then RGB are tried in that order.
func encodeNonIndexed(w *bytewriter.Writer, px, prev pixel) {
	if px[3] != prev[3] {
		w.WriteU8(opRGBA)
		w.WriteU8(px[0])
		w.WriteU8(px[1])
		w.WriteU8(px[2])
		w.WriteU8(px[3])
		return
	}

	vr := px[0] - prev[0]
	vg := px[1] - prev[1]
	vb := px[2] - prev[2]

	if isSmallDiff(vr) && isSmallDiff(vg) && isSmallDiff(vb) {
		w.WriteU8(opDiff | (vr+2)<<4 | (vg+2)<<2 | (vb + 2))
		return
	}

	vgR := vr - vg
	vgB := vb - vg

	if isLumaGreen(vg) && isLumaRedBlue(vgR) && isLumaRedBlue(vgB) {
		w.WriteU8(opLuma | (vg + 32))
		w.WriteU8((vgR+8)<<4 | (vgB + 8))
		return
	}

	w.WriteU8(opRGB)
	w.WriteU8(px[0])
	w.WriteU8(px[1])
	w.WriteU8(px[2])
}

// isSmallDiff reports whether a wrapped 8-bit delta lies in [-2, 1], i.e.
// its raw byte value is below 2 or above 253.
func isSmallDiff(d byte) bool { return d < 2 || d > 253 }

// isLumaGreen reports whether a wrapped 8-bit green delta lies in [-32,31].
func isLumaGreen(d byte) bool { return d < 32 || d > 223 }

// isLumaRedBlue reports whether a wrapped 8-bit red-green/blue-green delta
// lies in [-8,7].
func isLumaRedBlue(d byte) bool { return d < 8 || d > 247 }

// Encode allocates a MaxSize()-length buffer, encodes into it, and returns
// the result truncated to the actual encoded length.
func (e *Encoder) Encode() ([]byte, error) {
	buf := make([]byte, e.MaxSize())
	n, err := e.EncodeInto(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
