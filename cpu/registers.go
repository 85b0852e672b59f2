package cpu

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hexaflex/sim86/arch"
	"github.com/hexaflex/sim86/decoder"
)

// Registers holds the eight 16-bit general registers in encoding order.
// ax, cx, dx and bx are also addressable as 8-bit halves.
type Registers [arch.RegisterCount]uint16

// Get returns the value of r. Byte halves are returned in the low 8 bits.
func (rs *Registers) Get(r arch.Register) (uint16, error) {
	if !r.Valid() {
		return 0, errors.Wrapf(decoder.ErrUnknownRegister, "register %d", int(r))
	}

	v := rs[r.Index()]
	switch {
	case r.Wide():
		return v, nil
	case r.High():
		return v >> 8, nil
	default:
		return v & 0xff, nil
	}
}

// Set sets the value of r. For byte halves only the low 8 bits of value
// are used and the other half is left untouched.
func (rs *Registers) Set(r arch.Register, value uint16) error {
	if !r.Valid() {
		return errors.Wrapf(decoder.ErrUnknownRegister, "register %d", int(r))
	}

	i := r.Index()
	switch {
	case r.Wide():
		rs[i] = value
	case r.High():
		rs[i] = rs[i]&0x00ff | (value&0xff)<<8
	default:
		rs[i] = rs[i]&0xff00 | value&0xff
	}
	return nil
}

// WriteTo writes every non-zero word register to w, one per line,
// in encoding order.
func (rs *Registers) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, r := range arch.Registers() {
		if !r.Wide() || rs[r.Index()] == 0 {
			continue
		}
		v := rs[r.Index()]
		n, err := fmt.Fprintf(w, "      %s: 0x%04x (%d)\n", r, v, v)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
