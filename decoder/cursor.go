package decoder

import "github.com/pkg/errors"

// Cursor tracks the read position of a decoder in some byte source.
//
// Reads are relative to the start of the instruction under construction.
// Extend grows the pending length without moving the position; Commit
// moves the position past the pending bytes and resets the pending length.
type Cursor interface {
	// ByteAt returns the byte at position+offset.
	// Fails with ErrOutOfBounds past the end of the source.
	ByteAt(offset int) (byte, error)

	// Extend adds n bytes to the pending instruction length.
	Extend(n int)

	// Commit advances the position by the pending length and
	// returns true if bytes remain.
	Commit() bool

	// Pending returns the number of bytes consumed by the
	// instruction under construction.
	Pending() int
}

// Buffer is a Cursor over an immutable byte slice.
type Buffer struct {
	data    []byte
	pos     int
	pending int
}

// NewBuffer creates a cursor positioned at the start of data.
// The slice is never modified.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// ByteAt implements Cursor.
func (b *Buffer) ByteAt(offset int) (byte, error) {
	addr := b.pos + offset
	if offset < 0 || addr >= len(b.data) {
		return 0, errors.Wrapf(ErrOutOfBounds, "byte %d of %d-byte buffer", addr, len(b.data))
	}
	return b.data[addr], nil
}

// Extend implements Cursor.
func (b *Buffer) Extend(n int) {
	b.pending += n
}

// Commit implements Cursor.
func (b *Buffer) Commit() bool {
	b.pos += b.pending
	b.pending = 0
	return b.HasMore()
}

// Pending implements Cursor.
func (b *Buffer) Pending() int {
	return b.pending
}

// Position returns the offset of the next instruction.
func (b *Buffer) Position() int {
	return b.pos
}

// HasMore returns true if the position is inside the buffer.
func (b *Buffer) HasMore() bool {
	return b.pos < len(b.data)
}
