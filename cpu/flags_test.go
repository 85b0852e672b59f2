package cpu

import (
	"testing"

	"github.com/hexaflex/sim86/arch"
	"github.com/hexaflex/sim86/decoder"
)

func TestArithFlags(t *testing.T) {
	for _, v := range []struct {
		opcode int
		dest   arch.Register
		a, b   uint16
		result uint16
		flags  Flags
	}{
		{arch.ADD, arch.AX, 0, 0, 0, Flags{Zero: true}},
		{arch.ADD, arch.AX, 1, 2, 3, Flags{}},
		{arch.ADD, arch.AX, 0xffff, 1, 0, Flags{Zero: true}},
		{arch.ADD, arch.AX, 0x7fff, 1, 0x8000, Flags{Sign: true}},
		{arch.ADD, arch.AX, 0, 0xffff, 0xffff, Flags{Sign: true}},
		{arch.SUB, arch.AX, 0, 1, 0xffff, Flags{Sign: true}},
		{arch.SUB, arch.AX, 3, 2, 1, Flags{}},
		{arch.SUB, arch.AX, 0, 0xffff, 1, Flags{}},
		{arch.SUB, arch.AX, 5, 5, 0, Flags{Zero: true}},
		{arch.CMP, arch.AX, 0, 1, 0, Flags{Sign: true}},
		{arch.CMP, arch.AX, 3, 3, 3, Flags{Zero: true}},
		{arch.CMP, arch.AX, 3, 2, 3, Flags{}},

		{arch.ADD, arch.AL, 0, 0, 0, Flags{Zero: true}},
		{arch.ADD, arch.AL, 0xff, 1, 0, Flags{Zero: true}},
		{arch.ADD, arch.AL, 0x7f, 1, 0x80, Flags{Sign: true}},
		{arch.SUB, arch.AL, 0, 1, 0xff, Flags{Sign: true}},
		{arch.SUB, arch.AL, 0, 0xff, 1, Flags{}},
		{arch.CMP, arch.AL, 0, 0xff, 0, Flags{}},
		{arch.CMP, arch.AL, 7, 7, 7, Flags{Zero: true}},
		{arch.ADD, arch.AH, 0xff, 1, 0, Flags{Zero: true}},
		{arch.SUB, arch.AH, 0x10, 0x11, 0xff, Flags{Sign: true}},
	} {
		c := New(nil)
		c.regs.Set(v.dest, v.a)

		var src decoder.Operand
		if v.dest.Wide() {
			src = decoder.Imm16(v.b)
		} else {
			src = decoder.Imm8(uint8(v.b))
		}

		instr := decoder.Instruction{Opcode: v.opcode, Dest: decoder.Reg(v.dest), Src: src}
		if err := c.Execute(&instr); err != nil {
			t.Fatalf("%s: %v", &instr, err)
		}

		if have, _ := c.regs.Get(v.dest); have != v.result {
			t.Fatalf("%s (%s=%x): want %x; have %x", &instr, v.dest, v.a, v.result, have)
		}
		if c.flags != v.flags {
			t.Fatalf("%s (%s=%x): want flags %+v; have %+v", &instr, v.dest, v.a, v.flags, c.flags)
		}
	}
}

func TestArithFlagsExhaustiveByte(t *testing.T) {
	c := New(nil)

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, opcode := range []int{arch.ADD, arch.SUB, arch.CMP} {
				c.regs.Set(arch.BL, uint16(a))
				c.regs.Set(arch.BH, 0x5a)

				instr := decoder.Instruction{Opcode: opcode, Dest: decoder.Reg(arch.BL), Src: decoder.Imm8(uint8(b))}
				if err := c.Execute(&instr); err != nil {
					t.Fatal(err)
				}

				var r uint8
				if opcode == arch.ADD {
					r = uint8(a) + uint8(b)
				} else {
					r = uint8(a) - uint8(b)
				}

				want := uint16(r)
				if opcode == arch.CMP {
					want = uint16(a)
				}

				if have, _ := c.regs.Get(arch.BL); have != want {
					t.Fatalf("%s with bl=%d: want %d; have %d", &instr, a, want, have)
				}
				if bh, _ := c.regs.Get(arch.BH); bh != 0x5a {
					t.Fatalf("%s disturbed bh: %02x", &instr, bh)
				}
				if c.flags.Zero != (r == 0) || c.flags.Sign != (r&0x80 != 0) {
					t.Fatalf("%s with bl=%d: result %d, flags %+v", &instr, a, r, c.flags)
				}
			}
		}
	}
}

func TestFlagsString(t *testing.T) {
	for _, v := range []struct {
		f    Flags
		want string
	}{
		{Flags{}, ""},
		{Flags{Zero: true}, "Z"},
		{Flags{Sign: true}, "S"},
		{Flags{Zero: true, Sign: true}, "SZ"},
	} {
		if have := v.f.String(); have != v.want {
			t.Errorf("have %q; want %q", have, v.want)
		}
	}
}
