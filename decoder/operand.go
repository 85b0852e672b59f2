package decoder

import (
	"fmt"
	"strconv"

	"github.com/hexaflex/sim86/arch"
)

// OperandKind defines the variant held by an Operand.
type OperandKind byte

// Known operand kinds.
const (
	None        OperandKind = iota // No operand.
	Register                       // A named register.
	Direct                         // mem[Value]
	Effective                      // mem[Mode + Disp]
	Immediate8                     // 8-bit constant.
	Immediate16                    // 16-bit constant.
)

// Operand defines a value source or destination.
type Operand struct {
	Kind     OperandKind      // Variant tag.
	Reg      arch.Register    // Register for Register operands.
	Mode     arch.AddressMode // Base register combination for Effective operands.
	Disp     int16            // Signed displacement for Effective operands.
	DispSize int              // Encoded displacement bytes: 0, 1 or 2.
	Value    uint16           // Address for Direct operands, constant for immediates.
}

// Reg creates a register operand.
func Reg(r arch.Register) Operand {
	return Operand{Kind: Register, Reg: r}
}

// Addr creates a direct memory operand.
func Addr(addr uint16) Operand {
	return Operand{Kind: Direct, Value: addr}
}

// EA creates an effective address operand without displacement.
func EA(mode arch.AddressMode) Operand {
	return Operand{Kind: Effective, Mode: mode}
}

// EA8 creates an effective address operand with an 8-bit displacement.
func EA8(mode arch.AddressMode, disp int8) Operand {
	return Operand{Kind: Effective, Mode: mode, Disp: int16(disp), DispSize: 1}
}

// EA16 creates an effective address operand with a 16-bit displacement.
func EA16(mode arch.AddressMode, disp int16) Operand {
	return Operand{Kind: Effective, Mode: mode, Disp: disp, DispSize: 2}
}

// Imm8 creates an 8-bit immediate operand.
func Imm8(v uint8) Operand {
	return Operand{Kind: Immediate8, Value: uint16(v)}
}

// Imm16 creates a 16-bit immediate operand.
func Imm16(v uint16) Operand {
	return Operand{Kind: Immediate16, Value: v}
}

// IsMemory returns true for direct and effective address operands.
func (o Operand) IsMemory() bool {
	return o.Kind == Direct || o.Kind == Effective
}

// IsImmediate returns true for constant operands.
func (o Operand) IsImmediate() bool {
	return o.Kind == Immediate8 || o.Kind == Immediate16
}

// Width returns the operand's intrinsic width.
// Returns false for memory operands, whose width depends on context.
func (o Operand) Width() (arch.Width, bool) {
	switch o.Kind {
	case Register:
		if o.Reg.Wide() {
			return arch.Word, true
		}
		return arch.Byte, true
	case Immediate8:
		return arch.Byte, true
	case Immediate16:
		return arch.Word, true
	}
	return 0, false
}

func (o Operand) String() string {
	switch o.Kind {
	case Register:
		return o.Reg.String()
	case Direct:
		return "[" + strconv.Itoa(int(o.Value)) + "]"
	case Effective:
		if o.DispSize == 0 {
			return "[" + o.Mode.String() + "]"
		}
		if o.Disp < 0 {
			return fmt.Sprintf("[%s - %d]", o.Mode, -int(o.Disp))
		}
		return fmt.Sprintf("[%s + %d]", o.Mode, o.Disp)
	case Immediate8, Immediate16:
		return strconv.Itoa(int(o.Value))
	}
	return "INVALID OPERAND"
}
