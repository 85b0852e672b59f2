package decoder

import (
	"fmt"
	"io"

	"github.com/hexaflex/sim86/arch"
)

// Instruction defines decoded instruction data.
//
// Opcode selects the variant: arch.MOV and the arithmetic opcodes use
// Dest and Src, the jumps use Disp.
type Instruction struct {
	Offset int     // Address of the first encoded byte.
	Size   int     // Encoded length in bytes.
	Opcode int     // One of the arch opcodes.
	Dest   Operand // Destination operand.
	Src    Operand // Source operand.
	Disp   int8    // Relative jump displacement, measured from the next instruction.
}

func (i *Instruction) String() string {
	name, ok := arch.Name(i.Opcode)
	if !ok {
		return "INVALID"
	}

	if arch.IsJump(i.Opcode) {
		return fmt.Sprintf("%s %d", name, i.Disp)
	}

	if i.Dest.IsMemory() {
		switch i.Src.Kind {
		case Immediate8:
			return fmt.Sprintf("%s %s, byte %s", name, i.Dest, i.Src)
		case Immediate16:
			return fmt.Sprintf("%s %s, word %s", name, i.Dest, i.Src)
		}
	}

	return fmt.Sprintf("%s %s, %s", name, i.Dest, i.Src)
}

// WriteListing writes the assembly text of the given instructions to w,
// preceded by the 16-bit mode directive.
func WriteListing(w io.Writer, list []Instruction) error {
	if _, err := io.WriteString(w, "bits 16\n"); err != nil {
		return err
	}
	for i := range list {
		if _, err := fmt.Fprintln(w, list[i].String()); err != nil {
			return err
		}
	}
	return nil
}
