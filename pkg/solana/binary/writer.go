package binary

import (
	"crypto/ed25519"
	"fmt"
)

// LayoutInvariantViolation is the panic value raised when a Writer's cursor
// does not land exactly on the end of its buffer. It indicates a programming
// error in a layout definition and is never returned as an error.
type LayoutInvariantViolation struct {
	Size   int
	Offset int
}

func (v LayoutInvariantViolation) Error() string {
	return fmt.Sprintf("layout invariant violation: wrote %d of %d bytes", v.Offset, v.Size)
}

// Writer packs values into a fixed size buffer, tracking the current offset
// so that fields following a variable length block never need hand computed
// offsets.
type Writer struct {
	buf    []byte
	offset int
}

// NewWriter returns a Writer over a zeroed buffer of the provided size.
func NewWriter(size int) *Writer {
	return &Writer{
		buf: make([]byte, size),
	}
}

func (w *Writer) PutUint8(v uint8) *Writer {
	PutUint8(w.buf, v, &w.offset)
	return w
}

func (w *Writer) PutUint32(v uint32) *Writer {
	PutUint32(w.buf, v, &w.offset)
	return w
}

func (w *Writer) PutUint64(v uint64) *Writer {
	PutUint64(w.buf, v, &w.offset)
	return w
}

func (w *Writer) PutBool(v bool) *Writer {
	PutBool(w.buf, v, &w.offset)
	return w
}

func (w *Writer) PutKey32(v ed25519.PublicKey) *Writer {
	PutKey32(w.buf, v, &w.offset)
	return w
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.offset
}

// Len returns the size of the underlying buffer.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the packed buffer. It panics with a LayoutInvariantViolation
// if the buffer hasn't been filled exactly.
func (w *Writer) Bytes() []byte {
	if w.offset != len(w.buf) {
		panic(LayoutInvariantViolation{Size: len(w.buf), Offset: w.offset})
	}
	return w.buf
}
