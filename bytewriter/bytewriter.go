// Package bytewriter provides a bounded, position-tracked sink over a
// caller-owned byte buffer. The qoi encoder writes its whole output
// through it.
package bytewriter

import "encoding/binary"

// Writer wraps a mutable byte buffer and tracks a write cursor.
//
// Writer never allocates and never grows buf: callers must check Has before
// every write. Writing past the end of buf without checking Has first is a
// programmer error, not a reported failure.
type Writer struct {
	buf []byte
	pos int
}

// New wraps buf for writing, with the cursor positioned at the start.
func New(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Has reports whether n more bytes can be written before the buffer is
// exhausted.
func (w *Writer) Has(n int) bool {
	return w.pos+n <= len(w.buf)
}

// Position returns the current write cursor.
func (w *Writer) Position() int {
	return w.pos
}

// WriteU8 writes a single byte and advances the cursor by one.
func (w *Writer) WriteU8(v uint8) {
	w.buf[w.pos] = v
	w.pos++
}

// WriteU32BE writes v as four big-endian bytes.
func (w *Writer) WriteU32BE(v uint32) {
	binary.BigEndian.PutUint32(w.buf[w.pos:w.pos+4], v)
	w.pos += 4
}

// WriteU64BE writes v as eight big-endian bytes.
func (w *Writer) WriteU64BE(v uint64) {
	binary.BigEndian.PutUint64(w.buf[w.pos:w.pos+8], v)
	w.pos += 8
}

// WriteAll copies b into the buffer and advances the cursor by len(b).
func (w *Writer) WriteAll(b []byte) {
	n := copy(w.buf[w.pos:], b)
	w.pos += n
}
