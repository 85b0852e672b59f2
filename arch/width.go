package arch

// Width defines the size of an operand transfer.
type Width byte

// Known widths.
const (
	Byte Width = 1
	Word Width = 2
)

// Mask returns the value mask for the width.
func (w Width) Mask() uint16 {
	if w == Byte {
		return 0xff
	}
	return 0xffff
}

// SignBit returns the mask of the top bit for the width.
func (w Width) SignBit() uint16 {
	if w == Byte {
		return 0x80
	}
	return 0x8000
}

func (w Width) String() string {
	if w == Byte {
		return "byte"
	}
	return "word"
}
