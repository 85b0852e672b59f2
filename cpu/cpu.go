// Package cpu implements the simulated 8086 machine state and the
// fetch/decode/execute loop that drives it.
package cpu

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hexaflex/sim86/arch"
	"github.com/hexaflex/sim86/decoder"
)

// TraceFunc represents a callback handler for debug trace output.
// It is called with each instruction after decoding, before it executes.
type TraceFunc func(*decoder.Instruction)

// CPU implements the runtime.
type CPU struct {
	trace  TraceFunc           // Handler for debug trace output.
	memory Memory              // System memory.
	regs   Registers           // General registers.
	flags  Flags               // Status flags.
	ip     uint16              // Instruction pointer.
	size   int                 // Length of the loaded program.
	steps  int                 // Number of instructions executed since Load.
	cursor memoryCursor        // Decode cursor positioned at ip.
	instr  decoder.Instruction // Decoded instruction data.
}

// New creates a new CPU with zeroed memory and no program.
// Optionally with the given debug trace handler.
func New(trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*decoder.Instruction) { /* nop */ }
	}

	c := &CPU{
		trace:  trace,
		memory: make(Memory, MemoryCapacity),
	}
	c.cursor.cpu = c
	return c
}

// Load resets the machine state and copies program into the low addresses
// of memory.
func (c *CPU) Load(program []byte) error {
	if len(program) > MemoryCapacity {
		return errors.Wrapf(decoder.ErrOutOfBounds, "program of %d bytes exceeds %d bytes of memory",
			len(program), MemoryCapacity)
	}

	for i := range c.memory {
		c.memory[i] = 0
	}

	c.memory.Write(0, program)
	c.regs = Registers{}
	c.flags = Flags{}
	c.ip = 0
	c.size = len(program)
	c.steps = 0
	c.cursor.pending = 0
	return nil
}

// Memory returns the cpu's memory bank.
func (c *CPU) Memory() Memory {
	return c.memory
}

// Flags returns the current status flags.
func (c *CPU) Flags() Flags {
	return c.flags
}

// IP returns the instruction pointer.
func (c *CPU) IP() uint16 {
	return c.ip
}

// Steps returns the number of instructions executed since the last Load.
func (c *CPU) Steps() int {
	return c.steps
}

// Register returns the value of the register with the given name.
func (c *CPU) Register(name string) (uint16, error) {
	r, ok := arch.RegisterByName(name)
	if !ok {
		return 0, errors.Wrapf(decoder.ErrUnknownRegister, "%q", name)
	}
	return c.regs.Get(r)
}

// SetRegister sets the value of the register with the given name.
func (c *CPU) SetRegister(name string, value uint16) error {
	r, ok := arch.RegisterByName(name)
	if !ok {
		return errors.Wrapf(decoder.ErrUnknownRegister, "%q", name)
	}
	return c.regs.Set(r, value)
}

// HasMore returns true while the instruction pointer is inside the program.
func (c *CPU) HasMore() bool {
	return int(c.ip) < c.size
}

// Step performs a single execution step.
// Returns io.EOF if the program has reached its end.
func (c *CPU) Step() error {
	if !c.HasMore() {
		return io.EOF
	}

	ip := int(c.ip)
	c.steps++

	instr, err := decoder.Decode(&c.cursor)
	if err != nil {
		c.cursor.pending = 0
		return NewError(nil, ip, c.steps, err)
	}

	instr.Offset = ip
	c.instr = instr
	c.cursor.Commit()
	c.trace(&c.instr)

	if err := c.Execute(&c.instr); err != nil {
		return NewError(&c.instr, ip, c.steps, err)
	}
	return nil
}

// Run steps until the program ends or an error occurs.
// A positive limit bounds the number of steps; reaching it returns ErrStepLimit.
func (c *CPU) Run(limit int) error {
	for {
		if limit > 0 && c.steps >= limit && c.HasMore() {
			return errors.Wrapf(ErrStepLimit, "%d steps, ip %04x", c.steps, c.ip)
		}

		err := c.Step()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// WriteState writes a human-readable dump of the registers, instruction
// pointer and flags to w.
func (c *CPU) WriteState(w io.Writer) error {
	if _, err := c.regs.WriteTo(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "      ip: 0x%04x (%d)\n", c.ip, c.ip); err != nil {
		return err
	}
	if f := c.flags.String(); f != "" {
		if _, err := fmt.Fprintf(w, "   flags: %s\n", f); err != nil {
			return err
		}
	}
	return nil
}
