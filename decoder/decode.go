// Package decoder turns 8086 machine code into structured instructions.
//
// The decode routines only depend on the Cursor interface, so the same code
// serves the static disassembler and the simulator's instruction pointer.
package decoder

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/sim86/arch"
)

// family matches leading bytes with first&mask == match.
type family struct {
	mask   byte
	match  byte
	decode func(Cursor, byte, *Instruction) error
}

// families in matching priority.
var families = [...]family{
	{0xfc, 0x88, decodeMovRM},
	{0xf0, 0xb0, decodeMovImmReg},
	{0xfe, 0xc6, decodeMovImmRM},
	{0xfe, 0xa0, decodeMovMemAcc},
	{0xfe, 0xa2, decodeMovAccMem},
	{0xc4, 0x00, decodeArithRM},
	{0xfc, 0x80, decodeArithImmRM},
	{0xc6, 0x04, decodeArithImmAcc},
	{0xff, 0x74, decodeJump(arch.JE)},
	{0xff, 0x75, decodeJump(arch.JNE)},
}

// Decode decodes the instruction at the cursor position. The cursor's
// pending length equals the encoded length on success; the caller commits.
// Instruction.Offset is left for the caller to fill in.
func Decode(c Cursor) (Instruction, error) {
	var instr Instruction

	first, err := next8(c)
	if err != nil {
		return instr, err
	}

	for _, f := range families {
		if first&f.mask != f.match {
			continue
		}
		if err := f.decode(c, first, &instr); err != nil {
			return instr, &Error{Byte: first, Err: err}
		}
		instr.Size = c.Pending()
		return instr, nil
	}

	return instr, &Error{Byte: first, Err: ErrUnknownOpcode}
}

// Disassemble decodes every instruction in program. On failure it returns
// the instructions decoded so far along with the error, prefixed with the
// offending offset.
func Disassemble(program []byte) ([]Instruction, error) {
	var out []Instruction

	buf := NewBuffer(program)
	for buf.HasMore() {
		offset := buf.Position()

		instr, err := Decode(buf)
		if err != nil {
			return out, errors.Wrapf(err, "%04x", offset)
		}

		instr.Offset = offset
		out = append(out, instr)
		buf.Commit()
	}

	return out, nil
}

// next8 reads the next byte of the pending instruction.
func next8(c Cursor) (byte, error) {
	b, err := c.ByteAt(c.Pending())
	if err != nil {
		return 0, err
	}
	c.Extend(1)
	return b, nil
}

// next16 reads the next little-endian word of the pending instruction.
func next16(c Cursor) (uint16, error) {
	lo, err := next8(c)
	if err != nil {
		return 0, err
	}
	hi, err := next8(c)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// immediate reads an 8- or 16-bit immediate for the given width bit.
func immediate(c Cursor, w byte) (Operand, error) {
	if w == 0 {
		v, err := next8(c)
		return Imm8(v), err
	}
	v, err := next16(c)
	return Imm16(v), err
}

// modRM reads a mod/reg/rm byte along with any address bytes it implies.
// It returns the 3-bit reg field and the decoded r/m operand.
func modRM(c Cursor, w byte) (byte, Operand, error) {
	b, err := next8(c)
	if err != nil {
		return 0, Operand{}, err
	}

	mod := b >> 6
	reg := (b >> 3) & 7
	rm := b & 7

	switch mod {
	case 0b11:
		return reg, Reg(arch.DecodeRegister(w, rm)), nil

	case 0b00:
		if rm == arch.DirectAddressRM {
			addr, err := next16(c)
			return reg, Addr(addr), err
		}
		return reg, EA(arch.DecodeAddressMode(rm)), nil

	case 0b01:
		disp, err := next8(c)
		return reg, EA8(arch.DecodeAddressMode(rm), int8(disp)), err

	default:
		disp, err := next16(c)
		return reg, EA16(arch.DecodeAddressMode(rm), int16(disp)), err
	}
}

// regToRM decodes the shared "register/memory with register" layout:
// d and w in the opcode byte, then mod/reg/rm.
func regToRM(c Cursor, first byte, instr *Instruction) error {
	d := (first >> 1) & 1
	w := first & 1

	reg, rm, err := modRM(c, w)
	if err != nil {
		return err
	}

	r := Reg(arch.DecodeRegister(w, reg))
	if d == 1 {
		instr.Dest, instr.Src = r, rm
	} else {
		instr.Dest, instr.Src = rm, r
	}
	return nil
}

// 100010dw mod reg r/m
func decodeMovRM(c Cursor, first byte, instr *Instruction) error {
	instr.Opcode = arch.MOV
	return regToRM(c, first, instr)
}

// 1011wreg data [data]
func decodeMovImmReg(c Cursor, first byte, instr *Instruction) error {
	w := (first >> 3) & 1

	src, err := immediate(c, w)
	if err != nil {
		return err
	}

	instr.Opcode = arch.MOV
	instr.Dest = Reg(arch.DecodeRegister(w, first&7))
	instr.Src = src
	return nil
}

// 1100011w mod 000 r/m data [data]
func decodeMovImmRM(c Cursor, first byte, instr *Instruction) error {
	w := first & 1

	_, dest, err := modRM(c, w)
	if err != nil {
		return err
	}

	src, err := immediate(c, w)
	if err != nil {
		return err
	}

	instr.Opcode = arch.MOV
	instr.Dest = dest
	instr.Src = src
	return nil
}

// 1010000w addr-lo addr-hi
func decodeMovMemAcc(c Cursor, first byte, instr *Instruction) error {
	addr, err := next16(c)
	if err != nil {
		return err
	}

	instr.Opcode = arch.MOV
	instr.Dest = Reg(arch.DecodeRegister(first&1, 0))
	instr.Src = Addr(addr)
	return nil
}

// 1010001w addr-lo addr-hi
func decodeMovAccMem(c Cursor, first byte, instr *Instruction) error {
	addr, err := next16(c)
	if err != nil {
		return err
	}

	instr.Opcode = arch.MOV
	instr.Dest = Addr(addr)
	instr.Src = Reg(arch.DecodeRegister(first&1, 0))
	return nil
}

// 00ooo0dw mod reg r/m
func decodeArithRM(c Cursor, first byte, instr *Instruction) error {
	op, ok := arch.DecodeArith(first >> 3)
	if !ok {
		return ErrUnknownOpcode
	}

	instr.Opcode = op
	return regToRM(c, first, instr)
}

// 100000sw mod ooo r/m data [data]
func decodeArithImmRM(c Cursor, first byte, instr *Instruction) error {
	s := (first >> 1) & 1
	w := first & 1

	field, dest, err := modRM(c, w)
	if err != nil {
		return err
	}

	op, ok := arch.DecodeArith(field)
	if !ok {
		return errors.Wrapf(ErrUnknownOpcode, "operation field %03b", field)
	}

	var src Operand
	switch {
	case w == 0:
		src, err = immediate(c, 0)
	case s == 1:
		var v byte
		v, err = next8(c)
		src = Imm16(uint16(int16(int8(v))))
	default:
		src, err = immediate(c, 1)
	}
	if err != nil {
		return err
	}

	instr.Opcode = op
	instr.Dest = dest
	instr.Src = src
	return nil
}

// 00ooo10w data [data]
func decodeArithImmAcc(c Cursor, first byte, instr *Instruction) error {
	op, ok := arch.DecodeArith(first >> 3)
	if !ok {
		return ErrUnknownOpcode
	}

	w := first & 1
	src, err := immediate(c, w)
	if err != nil {
		return err
	}

	instr.Opcode = op
	instr.Dest = Reg(arch.DecodeRegister(w, 0))
	instr.Src = src
	return nil
}

// decodeJump returns the decoder for a conditional jump: opcode, disp8.
func decodeJump(opcode int) func(Cursor, byte, *Instruction) error {
	return func(c Cursor, _ byte, instr *Instruction) error {
		disp, err := next8(c)
		if err != nil {
			return err
		}

		instr.Opcode = opcode
		instr.Disp = int8(disp)
		return nil
	}
}
