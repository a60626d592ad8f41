package qoi

// ColorSpace identifies the pixel layout an Encoder consumes. QOI supports
// exactly two: 3-byte RGB and 4-byte RGBA.
type ColorSpace uint8

const (
	// RGB is a 3-byte-per-pixel colorspace; the encoder's running pixel
	// keeps alpha fixed at 255 since the input never supplies one.
	RGB ColorSpace = iota
	// RGBA is a 4-byte-per-pixel colorspace.
	RGBA
)

func (c ColorSpace) String() string {
	switch c {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return "unknown"
	}
}

// channels returns the number of bytes per pixel for c, and false if c is
// not one of the supported colorspaces.
func (c ColorSpace) channels() (int, bool) {
	switch c {
	case RGB:
		return 3, true
	case RGBA:
		return 4, true
	default:
		return 0, false
	}
}

// BitDepth is the per-channel bit depth of the input. QOI only ever
// supports 8.
type BitDepth uint8

// Eight is the only BitDepth QOI accepts.
const Eight BitDepth = 8

// ColorCharacteristics records whether pixel values are sRGB or linear
// light. It affects exactly one header byte and nothing about the opcode
// stream.
type ColorCharacteristics uint8

const (
	// SRGB is the default color characteristic.
	SRGB ColorCharacteristics = iota
	// Linear marks pixel data as linear light rather than sRGB-encoded.
	Linear
)

// EncoderOptions describes the pixel buffer an Encoder will consume. It is
// immutable for the duration of one Encode/EncodeInto call, the same role
// teacher's Encoder{CompressionLevel, BufferPool} struct plays for PNG.
type EncoderOptions struct {
	Width      uint64
	Height     uint64
	Colorspace ColorSpace
	BitDepth   BitDepth
}

// NewEncoderOptions builds the options for an 8-bit RGB/RGBA encode.
func NewEncoderOptions(width, height uint64, colorspace ColorSpace) EncoderOptions {
	return EncoderOptions{
		Width:      width,
		Height:     height,
		Colorspace: colorspace,
		BitDepth:   Eight,
	}
}
