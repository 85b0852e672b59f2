package arch

// AddressMode identifies one of the 8 fixed base register combinations
// selected by the r/m field of a memory operand.
type AddressMode byte

// Known address modes, in r/m encoding order.
const (
	BXSI AddressMode = iota // [bx + si]
	BXDI                    // [bx + di]
	BPSI                    // [bp + si]
	BPDI                    // [bp + di]
	SIOnly                  // [si]
	DIOnly                  // [di]
	BPOnly                  // [bp]
	BXOnly                  // [bx]
)

// DirectAddressRM is the r/m value that, combined with mod 00, means a
// 16-bit absolute address follows instead of [bp].
const DirectAddressRM = 0b110

var addressModes = [...]struct {
	name string
	base [2]Register
	n    int
}{
	{"bx + si", [2]Register{BX, SI}, 2},
	{"bx + di", [2]Register{BX, DI}, 2},
	{"bp + si", [2]Register{BP, SI}, 2},
	{"bp + di", [2]Register{BP, DI}, 2},
	{"si", [2]Register{SI}, 1},
	{"di", [2]Register{DI}, 1},
	{"bp", [2]Register{BP}, 1},
	{"bx", [2]Register{BX}, 1},
}

// DecodeAddressMode returns the address mode for a 3-bit r/m field.
func DecodeAddressMode(rm byte) AddressMode {
	return AddressMode(rm & 7)
}

// Valid returns true if m is a known address mode.
func (m AddressMode) Valid() bool {
	return int(m) < len(addressModes)
}

// Base returns the registers summed by this mode.
func (m AddressMode) Base() []Register {
	am := addressModes[m]
	return am.base[:am.n]
}

func (m AddressMode) String() string {
	if !m.Valid() {
		return "INVALID MODE"
	}
	return addressModes[m].name
}
