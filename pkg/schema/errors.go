package schema

import (
	"errors"
	"strings"
)

var (
	ErrInvalidTag   = errors.New("schema: invalid validation tag")
	ErrEmptyTag     = errors.New("schema: empty validation tag")
	ErrNilValidator = errors.New("schema: nil validator")
)

// Error reports failed validation. Each message starts with the subject "this ",
// which the formstate schema adapter strips.
type Error struct {
	messages []string
	cause    error
}

func (e *Error) Error() string {
	return "schema: " + strings.Join(e.messages, "; ")
}

func (e *Error) Messages() []string {
	out := make([]string, len(e.messages))
	copy(out, e.messages)
	return out
}

// Unwrap exposes the underlying validator.ValidationErrors.
func (e *Error) Unwrap() error {
	return e.cause
}
