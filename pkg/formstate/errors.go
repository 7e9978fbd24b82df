package formstate

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnknownAdapter  = errors.New("formstate: unknown adapter")
	ErrInvalidRule     = errors.New("formstate: rule does not match adapter")
	ErrDuplicateField  = errors.New("formstate: duplicate field name")
	ErrEmptyFieldName  = errors.New("formstate: empty field name")
	ErrValidationPanic = errors.New("formstate: validation panicked")
)

const (
	// MessageInvalid is recorded when a rule fails without giving a reason.
	MessageInvalid = "is invalid"
	// MessageTimeout is recorded when a rule gives up on its deadline.
	MessageTimeout = "validation timed out"
)

// Failure is the error a validation function returns to report invalid input.
// Its messages become the field's error payload.
type Failure struct {
	messages Messages
}

// Fail builds a Failure carrying msgs. Without messages the failure reports MessageInvalid.
func Fail(msgs ...string) error {
	if len(msgs) == 0 {
		msgs = []string{MessageInvalid}
	}
	return &Failure{messages: Messages(msgs).Clone()}
}

func (f *Failure) Error() string {
	return "validation failed: " + strings.Join(f.messages, "; ")
}

// Messages returns a copy of the failure messages.
func (f *Failure) Messages() []string {
	return f.messages.Clone()
}

// messenger is satisfied by Failure, validator.ValidationErrors and schema errors.
type messenger interface {
	Messages() []string
}

// MessagesOf converts an error returned by a validation function into the
// field's error payload. Nil means success.
func MessagesOf(err error) Messages {
	if err == nil {
		return nil
	}

	var m messenger
	if errors.As(err, &m) {
		if msgs := m.Messages(); len(msgs) > 0 {
			return Messages(msgs)
		}
		return Messages{MessageInvalid}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Messages{MessageTimeout}
	}

	return Messages{err.Error()}
}
