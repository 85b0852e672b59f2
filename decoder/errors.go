package decoder

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fatal error categories. None of these are recoverable: decoding must not
// resume past the point where one was returned.
var (
	ErrUnknownOpcode   = errors.New("unrecognized opcode")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrUnknownRegister = errors.New("unknown register")
)

// Error defines a decode failure for the instruction starting with Byte.
type Error struct {
	Byte byte  // Leading byte of the instruction being decoded.
	Err  error // One of the Err* categories, possibly wrapped.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (opcode 0x%02x)", e.Err, e.Byte)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
