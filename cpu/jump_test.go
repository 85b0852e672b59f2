package cpu

import (
	"testing"

	"github.com/hexaflex/sim86/arch"
	"github.com/hexaflex/sim86/decoder"
)

func TestJumpDisplacement(t *testing.T) {
	for _, v := range []struct {
		opcode int
		zero   bool
		ip     uint16
		disp   int8
		want   uint16
	}{
		{arch.JE, true, 10, 4, 14},
		{arch.JE, false, 10, 4, 10},
		{arch.JNE, false, 10, -8, 2},
		{arch.JNE, true, 10, -8, 10},
		{arch.JE, true, 1, -2, 0xffff},
		{arch.JNE, false, 0xfffe, 127, 125},
		{arch.JE, true, 200, -128, 72},
	} {
		c := New(nil)
		c.ip = v.ip
		c.flags.Zero = v.zero

		instr := decoder.Instruction{Opcode: v.opcode, Disp: v.disp}
		if err := c.Execute(&instr); err != nil {
			t.Fatal(err)
		}

		if c.ip != v.want {
			t.Fatalf("%s at %d (zero=%v): want ip %d; have %d", &instr, v.ip, v.zero, v.want, c.ip)
		}
	}
}

func TestMemoryWrap(t *testing.T) {
	m := make(Memory, MemoryCapacity)

	m.SetU16(0xffff, 0xbeef)
	if m.U8(0xffff) != 0xef || m.U8(0) != 0xbe {
		t.Fatalf("word write did not wrap: %02x %02x", m.U8(0xffff), m.U8(0))
	}
	if m.U16(0xffff) != 0xbeef {
		t.Fatalf("word read did not wrap: %04x", m.U16(0xffff))
	}
}

func TestEffectiveAddressWrap(t *testing.T) {
	c := New(nil)
	c.regs.Set(arch.BX, 0xfff0)
	c.regs.Set(arch.SI, 0x0020)

	addr, err := c.address(decoder.EA8(arch.BXSI, -0x08))
	if err != nil {
		t.Fatal(err)
	}
	if addr != 0x0008 {
		t.Fatalf("want 0008; have %04x", addr)
	}
}
