package cpu

import "github.com/hexaflex/sim86/arch"

// Flags holds the modeled status flags.
type Flags struct {
	Zero bool // Result was zero.
	Sign bool // Top bit of the result was set.
}

// update sets the flags from an arithmetic result of the given width.
func (f *Flags) update(result uint16, w arch.Width) {
	result &= w.Mask()
	f.Zero = result == 0
	f.Sign = result&w.SignBit() != 0
}

func (f Flags) String() string {
	var out string
	if f.Sign {
		out += "S"
	}
	if f.Zero {
		out += "Z"
	}
	return out
}
