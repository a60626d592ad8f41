package qoi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmamba/stillimage/qoi"
)

func ramp(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 256)
	}
	return out
}

func TestEncodeRGBRampHeaderAndTrailer(t *testing.T) {
	pixels := ramp(100 * 100 * 3)
	enc := qoi.New(pixels, qoi.NewEncoderOptions(100, 100, qoi.RGB))

	out, err := enc.Encode()
	require.NoError(t, err)

	want := []byte{0x71, 0x6F, 0x69, 0x66, 0x00, 0x00, 0x00, 0x64, 0x00, 0x00, 0x00, 0x64, 0x03, 0x00}
	require.Equal(t, want, out[:14])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, out[len(out)-8:])
	require.LessOrEqual(t, len(out), enc.MaxSize())
}

func TestEncodeRGBARampHeaderChannelByte(t *testing.T) {
	pixels := ramp(100 * 100 * 4)
	enc := qoi.New(pixels, qoi.NewEncoderOptions(100, 100, qoi.RGBA))

	out, err := enc.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(0x04), out[12])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, out[len(out)-8:])
}

func TestEncodeUniformBlackRGBCompressesToRun(t *testing.T) {
	// 2x2 all-zero RGB: every pixel equals the initial running pixel
	// (0,0,0,255) because RGB input never supplies alpha.
	pixels := make([]byte, 2*2*3)
	enc := qoi.New(pixels, qoi.NewEncoderOptions(2, 2, qoi.RGB))

	out, err := enc.Encode()
	require.NoError(t, err)

	body := out[14 : len(out)-8]
	require.Equal(t, []byte{0xC3}, body) // RUN | (4-1)
}

func TestEncodeRGBNonIndexedRGBOpcode(t *testing.T) {
	pixels := []byte{10, 20, 30}
	enc := qoi.New(pixels, qoi.NewEncoderOptions(1, 1, qoi.RGB))
	out, err := enc.Encode()
	require.NoError(t, err)
	body := out[14 : len(out)-8]
	require.Equal(t, []byte{0xFE, 10, 20, 30}, body)
}

func TestEncodeRGBASingleAlphaChangeEmitsRGBA(t *testing.T) {
	// Alpha 128 differs from the running alpha 255. An all-zero pixel would
	// not do here: it hashes to slot 0, which starts out as (0,0,0,0), so it
	// would be emitted as INDEX 0 instead.
	pixels := []byte{0, 0, 0, 128}
	enc := qoi.New(pixels, qoi.NewEncoderOptions(1, 1, qoi.RGBA))
	out, err := enc.Encode()
	require.NoError(t, err)
	body := out[14 : len(out)-8]
	require.Equal(t, []byte{0xFF, 0, 0, 0, 128}, body)
}

func TestEncodeTooLargeDimensionsFails(t *testing.T) {
	enc := qoi.New(nil, qoi.NewEncoderOptions(1<<32, 0, qoi.RGB))
	_, err := enc.Encode()
	require.Error(t, err)
	var dimErr qoi.ErrTooLargeDimensions
	require.ErrorAs(t, err, &dimErr)
	require.Equal(t, uint64(1<<32), dimErr.Dimension)
}

func TestEncodeLengthMismatchFails(t *testing.T) {
	enc := qoi.New(make([]byte, 5), qoi.NewEncoderOptions(2, 2, qoi.RGB))
	_, err := enc.Encode()
	require.Error(t, err)
	require.IsType(t, qoi.ErrGeneric(""), err)
}

func TestEncodeUnsupportedColorspaceFails(t *testing.T) {
	enc := qoi.New(make([]byte, 4), qoi.NewEncoderOptions(1, 1, qoi.ColorSpace(99)))
	_, err := enc.Encode()
	require.Error(t, err)
	var csErr qoi.ErrUnsupportedColorspace
	require.ErrorAs(t, err, &csErr)
}

func TestEncodeIntoTooSmallBufferFails(t *testing.T) {
	pixels := ramp(10 * 10 * 3)
	enc := qoi.New(pixels, qoi.NewEncoderOptions(10, 10, qoi.RGB))
	buf := make([]byte, 10)
	_, err := enc.EncodeInto(buf)
	require.Error(t, err)
}

func TestHeaderIsPureFunctionOfOptions(t *testing.T) {
	pixels := ramp(4 * 4 * 3)
	enc1 := qoi.New(pixels, qoi.NewEncoderOptions(4, 4, qoi.RGB))
	enc2 := qoi.New(pixels, qoi.NewEncoderOptions(4, 4, qoi.RGB))

	out1, err := enc1.Encode()
	require.NoError(t, err)
	out2, err := enc2.Encode()
	require.NoError(t, err)
	require.Equal(t, out1[:14], out2[:14])
}

func TestEncodeDiffOpcodeForSmallDelta(t *testing.T) {
	// prev starts at (0,0,0,255); first pixel (1,0,-1 wrapped=255,255) is
	// within DIFF range: vr=1,vg=0,vb=-1(255).
	pixels := []byte{1, 0, 255}
	enc := qoi.New(pixels, qoi.NewEncoderOptions(1, 1, qoi.RGB))
	out, err := enc.Encode()
	require.NoError(t, err)
	body := out[14 : len(out)-8]
	require.Len(t, body, 1)
	require.Equal(t, byte(0x40), body[0]&0xC0)
}

func TestEncodeLumaOpcodeForMidRangeGreenDelta(t *testing.T) {
	// vg = 10 (within [-32,31]), vr=vg, vb=vg so vg_r=vg_b=0: within LUMA.
	pixels := []byte{10, 10, 10}
	enc := qoi.New(pixels, qoi.NewEncoderOptions(1, 1, qoi.RGB))
	out, err := enc.Encode()
	require.NoError(t, err)
	body := out[14 : len(out)-8]
	require.Len(t, body, 2)
	require.Equal(t, byte(0x80), body[0]&0xC0)
}

func TestEncodeRunFlushesAtSixtyTwo(t *testing.T) {
	// 70 identical pixels: first 62 collapse into one RUN|61 opcode, the
	// remaining 8 into a second RUN|7 opcode.
	pixels := make([]byte, 70*3)
	enc := qoi.New(pixels, qoi.NewEncoderOptions(70, 1, qoi.RGB))
	out, err := enc.Encode()
	require.NoError(t, err)
	body := out[14 : len(out)-8]
	require.Equal(t, []byte{0xC0 | 61, 0xC0 | 7}, body)
}

func TestSetColorCharacteristicsAffectsOnlyHeaderByte(t *testing.T) {
	pixels := ramp(4 * 4 * 3)
	enc := qoi.New(pixels, qoi.NewEncoderOptions(4, 4, qoi.RGB))
	enc.SetColorCharacteristics(qoi.Linear)

	out, err := enc.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(1), out[13])
}
