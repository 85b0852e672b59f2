// Package arch defines the modeled subset of the 8086 instruction set
// along with the fixed register and addressing tables it encodes.
package arch

// Known opcodes.
const (
	MOV = iota
	ADD
	SUB
	CMP
	JE
	JNE
)

// Name returns the mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(opcode int) (string, bool) {
	switch opcode {
	case MOV:
		return "mov", true
	case ADD:
		return "add", true
	case SUB:
		return "sub", true
	case CMP:
		return "cmp", true
	case JE:
		return "je", true
	case JNE:
		return "jne", true
	}
	return "", false
}

// IsArith returns true for the arithmetic and compare opcodes.
func IsArith(opcode int) bool {
	return opcode == ADD || opcode == SUB || opcode == CMP
}

// IsJump returns true for the conditional relative jumps.
func IsJump(opcode int) bool {
	return opcode == JE || opcode == JNE
}

// DecodeArith returns the arithmetic opcode selected by the 3-bit
// operation field (bits 3..5 of the opcode or mod/reg/rm byte).
// Returns false for operations outside the modeled subset.
func DecodeArith(field byte) (int, bool) {
	switch field & 7 {
	case 0b000:
		return ADD, true
	case 0b101:
		return SUB, true
	case 0b111:
		return CMP, true
	}
	return 0, false
}
