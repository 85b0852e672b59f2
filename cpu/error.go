package cpu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hexaflex/sim86/decoder"
)

// ErrStepLimit is returned by Run when the step limit is reached before
// the program ends.
var ErrStepLimit = errors.New("step limit reached")

// Error defines a runtime error.
type Error struct {
	*decoder.Instruction // nil if decoding failed.

	IP   int   // Address of the failing instruction.
	Step int   // 1-based ordinal of the failing instruction.
	Err  error // Underlying error.
}

// NewError creates a new runtime error for the given instruction.
func NewError(instr *decoder.Instruction, ip, step int, err error) *Error {
	return &Error{
		Instruction: instr,
		IP:          ip,
		Step:        step,
		Err:         err,
	}
}

func (e *Error) Error() string {
	if e.Instruction == nil {
		return fmt.Sprintf("%04x: #%d: %v", e.IP, e.Step, e.Err)
	}
	return fmt.Sprintf("%04x: #%d %s: %v", e.IP, e.Step, e.Instruction, e.Err)
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
