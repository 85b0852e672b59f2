package arch

import "strings"

// Register identifies one of the 16 register names: 8 words and the
// 8 byte halves of ax, cx, dx and bx.
type Register byte

// Known registers, in encoding order. The low 3 bits of a word register
// match its reg field encoding, as do the low 3 bits of a byte register.
const (
	AX Register = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

// RegisterCount is the number of 16-bit registers in the register file.
const RegisterCount = 8

var registerNames = [...]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
}

// DecodeRegister returns the register selected by a 3-bit reg or r/m
// field for the given width bit.
func DecodeRegister(w, reg byte) Register {
	if w == 0 {
		return AL + Register(reg&7)
	}
	return AX + Register(reg&7)
}

// Valid returns true if r is one of the known register names.
func (r Register) Valid() bool {
	return int(r) < len(registerNames)
}

// Wide returns true for the 16-bit registers.
func (r Register) Wide() bool {
	return r < AL
}

// Index returns the register file slot that holds r.
// Byte halves share the slot of their word register.
func (r Register) Index() int {
	if r.Wide() {
		return int(r)
	}
	return int(r-AL) & 3
}

// High returns true if r is the upper half of its word register.
func (r Register) High() bool {
	return r >= AH
}

func (r Register) String() string {
	if !r.Valid() {
		return "INVALID REG"
	}
	return registerNames[r]
}

// RegisterByName returns the register for the given name.
// Returns false if the name is not recognized.
func RegisterByName(name string) (Register, bool) {
	name = strings.ToLower(name)
	for i, v := range registerNames {
		if v == name {
			return Register(i), true
		}
	}
	return 0, false
}

// Registers returns all register names in encoding order.
func Registers() []Register {
	out := make([]Register, len(registerNames))
	for i := range out {
		out[i] = Register(i)
	}
	return out
}
