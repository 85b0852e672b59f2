package cpu

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/sim86/arch"
	"github.com/hexaflex/sim86/decoder"
)

// Execute applies a decoded instruction to the machine state.
// Jumps are relative to the current instruction pointer, which Step has
// already advanced past the instruction.
func (c *CPU) Execute(instr *decoder.Instruction) error {
	switch op := instr.Opcode; {
	case op == arch.MOV:
		w := transferWidth(instr.Dest, instr.Src)
		v, err := c.read(instr.Src, w)
		if err != nil {
			return err
		}
		return c.write(instr.Dest, w, v)

	case arch.IsArith(op):
		return c.arith(instr)

	case op == arch.JE:
		if c.flags.Zero {
			c.jump(instr.Disp)
		}
	case op == arch.JNE:
		if !c.flags.Zero {
			c.jump(instr.Disp)
		}

	default:
		return errors.Wrapf(decoder.ErrUnknownOpcode, "opcode %d", instr.Opcode)
	}

	return nil
}

// arith performs add, sub and cmp. Cmp only updates the flags.
func (c *CPU) arith(instr *decoder.Instruction) error {
	if instr.Dest.IsImmediate() {
		return errors.Wrapf(decoder.ErrInvalidOperand, "immediate destination %s", instr.Dest)
	}

	w := arithWidth(instr.Dest, instr.Src)

	a, err := c.read(instr.Dest, w)
	if err != nil {
		return err
	}

	b, err := c.read(instr.Src, w)
	if err != nil {
		return err
	}

	var result uint16
	if instr.Opcode == arch.ADD {
		result = a + b
	} else {
		result = a - b
	}
	result &= w.Mask()

	c.flags.update(result, w)

	if instr.Opcode == arch.CMP {
		return nil
	}
	return c.write(instr.Dest, w, result)
}

// jump moves the instruction pointer by disp, wrapping at 16 bits.
func (c *CPU) jump(disp int8) {
	c.ip = uint16(int(c.ip) + int(disp))
}

// address resolves the memory address of a direct or effective operand.
func (c *CPU) address(op decoder.Operand) (uint16, error) {
	switch op.Kind {
	case decoder.Direct:
		return op.Value, nil
	case decoder.Effective:
		if !op.Mode.Valid() {
			return 0, errors.Wrapf(decoder.ErrInvalidOperand, "address mode %d", op.Mode)
		}
		addr := uint16(op.Disp)
		for _, r := range op.Mode.Base() {
			v, err := c.regs.Get(r)
			if err != nil {
				return 0, err
			}
			addr += v
		}
		return addr, nil
	}
	return 0, errors.Wrapf(decoder.ErrInvalidOperand, "%s is not a memory operand", op)
}

// read returns the value of op at width w.
func (c *CPU) read(op decoder.Operand, w arch.Width) (uint16, error) {
	switch op.Kind {
	case decoder.Register:
		v, err := c.regs.Get(op.Reg)
		return v & w.Mask(), err

	case decoder.Direct, decoder.Effective:
		addr, err := c.address(op)
		if err != nil {
			return 0, err
		}
		if w == arch.Byte {
			return uint16(c.memory.U8(addr)), nil
		}
		return c.memory.U16(addr), nil

	case decoder.Immediate8, decoder.Immediate16:
		return op.Value & w.Mask(), nil
	}

	return 0, errors.Wrapf(decoder.ErrInvalidOperand, "cannot read operand kind %d", op.Kind)
}

// write stores v into op at width w.
func (c *CPU) write(op decoder.Operand, w arch.Width, v uint16) error {
	switch op.Kind {
	case decoder.Register:
		return c.regs.Set(op.Reg, v)

	case decoder.Direct, decoder.Effective:
		addr, err := c.address(op)
		if err != nil {
			return err
		}
		if w == arch.Byte {
			c.memory.SetU8(addr, uint8(v))
		} else {
			c.memory.SetU16(addr, v)
		}
		return nil

	case decoder.Immediate8, decoder.Immediate16:
		return errors.Wrapf(decoder.ErrInvalidOperand, "cannot write to immediate %s", op)
	}

	return errors.Wrapf(decoder.ErrInvalidOperand, "cannot write operand kind %d", op.Kind)
}

// transferWidth infers the width of a mov. Any word-sized register or
// immediate makes it a word transfer, any byte-sized one a byte transfer.
// Memory to memory defaults to word.
func transferWidth(dest, src decoder.Operand) arch.Width {
	dw, dok := dest.Width()
	sw, sok := src.Width()

	switch {
	case dok && dw == arch.Word, sok && sw == arch.Word:
		return arch.Word
	case dok, sok:
		return arch.Byte
	}
	return arch.Word
}

// arithWidth infers the width of an arithmetic operation. A register
// destination decides; a memory destination takes its width from the
// source, defaulting to word.
func arithWidth(dest, src decoder.Operand) arch.Width {
	if w, ok := dest.Width(); ok {
		return w
	}
	if w, ok := src.Width(); ok {
		return w
	}
	return arch.Word
}
