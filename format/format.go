// Package format sniffs raw image bytes to a format tag and dispatches to a
// per-format decoder. Decoders are registered by the concrete format
// packages (png, jpeg, ppm, psd, farbfeld) at init() time, gated behind Go
// build tags that stand in for the original's Cargo feature flags — a
// format whose package was excluded from the build is simply never
// registered, and Open reports that the same way it reports an
// unrecognized magic prefix: a typed error, never a panic.
package format

import (
	"bytes"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FormatTag identifies a recognized still-image container format.
type FormatTag uint8

const (
	_ FormatTag = iota // zero value is not a valid tag; see GuessFormat.
	PNG
	JPEG
	PPM
	PSD
	Farbfeld
)

func (t FormatTag) String() string {
	switch t {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case PPM:
		return "PPM"
	case PSD:
		return "PSD"
	case Farbfeld:
		return "Farbfeld"
	default:
		return "unknown"
	}
}

// magicEntry pairs a fixed byte prefix with the tag it identifies.
type magicEntry struct {
	prefix []byte
	tag    FormatTag
}

// magicTable is the closed, ordered set of recognized prefixes. First match
// wins.
var magicTable = []magicEntry{
	{[]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, PNG},
	{[]byte{0xFF, 0xD8, 0xFF}, JPEG},
	{[]byte("P6"), PPM},
	{[]byte("P5"), PPM},
	{[]byte("8BPS"), PSD},
	{[]byte("farbfeld"), Farbfeld},
}

// GuessFormat classifies data by its leading bytes. It returns false if no
// entry in magicTable matches.
func GuessFormat(data []byte) (FormatTag, bool) {
	for _, entry := range magicTable {
		if bytes.HasPrefix(data, entry.prefix) {
			return entry.tag, true
		}
	}
	return FormatTag(0), false
}

// Header is the pixel-free information every stub decoder can report.
type Header struct {
	Width  int
	Height int
}

// Decoder is the capability set every per-format package implements. Decode
// is the only method that may legitimately be unimplemented for a given
// format in this codebase (decoding anything but sniffing/headers is out of
// scope); DecodeHeaders and Dimensions must always work from a
// format-matching buffer.
type Decoder interface {
	DecodeHeaders() (Header, error)
	Decode() error
	Dimensions() (width, height int)
}

// ErrUnsupportedFormat reports a sniffed or explicitly requested tag with
// no registered decoder — either nothing matched, or the matching
// package was excluded from this build via a build tag.
type ErrUnsupportedFormat struct {
	Tag FormatTag
}

func (e ErrUnsupportedFormat) Error() string {
	return "format: unsupported format " + e.Tag.String()
}

// ErrNotImplemented is returned by every stub decoder's Decode method: full
// pixel decoding is explicitly out of scope for this module.
var ErrNotImplemented = errors.New("format: pixel decode not implemented")

type factory func([]byte) Decoder

var (
	registryMu sync.RWMutex
	registry   = map[FormatTag]factory{}
)

// Register installs a decoder factory for tag. Called from each per-format
// package's init(), which only runs if that package was linked into the
// build.
func Register(tag FormatTag, f factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tag] = f
}

// Open sniffs data and returns the registered decoder for its format, or
// ErrUnsupportedFormat if no format matched or that format's package was
// not linked into this build.
func Open(data []byte) (Decoder, error) {
	tag, ok := GuessFormat(data)
	if !ok {
		logger.Debug("format: no magic prefix matched")
		return nil, ErrUnsupportedFormat{Tag: FormatTag(0)}
	}

	registryMu.RLock()
	f, ok := registry[tag]
	registryMu.RUnlock()
	if !ok {
		logger.Warn("format: sniffed tag has no registered decoder", zap.Stringer("tag", tag))
		return nil, ErrUnsupportedFormat{Tag: tag}
	}

	logger.Debug("format: dispatching", zap.Stringer("tag", tag))
	return f(data), nil
}

var logger = zap.NewNop()

// SetLogger installs l as the package-level dispatch logger. Passing nil
// restores the no-op default. Safe to call at most once during program
// startup; not synchronized against concurrent Open calls, matching the
// rest of this package's "registry is written once, at init time" model.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
