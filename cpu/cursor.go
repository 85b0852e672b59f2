package cpu

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/sim86/decoder"
)

// memoryCursor is a decoder.Cursor over the loaded program, positioned
// at the cpu's instruction pointer.
type memoryCursor struct {
	cpu     *CPU
	pending int
}

// ByteAt implements decoder.Cursor.
func (c *memoryCursor) ByteAt(offset int) (byte, error) {
	addr := int(c.cpu.ip) + offset
	if offset < 0 || addr >= c.cpu.size {
		return 0, errors.Wrapf(decoder.ErrOutOfBounds, "address %04x outside %d-byte program", addr, c.cpu.size)
	}
	return c.cpu.memory[addr], nil
}

// Extend implements decoder.Cursor.
func (c *memoryCursor) Extend(n int) {
	c.pending += n
}

// Commit implements decoder.Cursor.
func (c *memoryCursor) Commit() bool {
	c.cpu.ip += uint16(c.pending)
	c.pending = 0
	return c.cpu.HasMore()
}

// Pending implements decoder.Cursor.
func (c *memoryCursor) Pending() int {
	return c.pending
}
