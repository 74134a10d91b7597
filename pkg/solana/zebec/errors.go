package zebec

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidInstructionArgs = errors.New("invalid instruction args")
)

// EncodingError is returned when an encoder is given arguments it cannot
// represent. No bytes are produced when it is returned.
type EncodingError struct {
	Instruction InstructionType
	Reason      string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInstructionArgs.Error(), e.Instruction, e.Reason)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidInstructionArgs
}

func newEncodingError(ix InstructionType, format string, args ...interface{}) error {
	return &EncodingError{
		Instruction: ix,
		Reason:      fmt.Sprintf(format, args...),
	}
}

// DerivationError is returned when no program address can be derived for a
// seed set.
type DerivationError struct {
	Seeds [][]byte
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("failed to derive program address from %d seeds: %v", len(e.Seeds), e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}
