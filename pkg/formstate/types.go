package formstate

import (
	"context"
	"maps"
	"slices"
)

// Values maps field names to their current raw values.
type Values map[string]any

// Clone returns a shallow copy of v. A nil map clones to an empty one.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Messages is a field's error payload. Nil means the field is valid.
type Messages []string

func (m Messages) Clone() Messages {
	if m == nil {
		return nil
	}
	return slices.Clone(m)
}

// Errors maps field names to their error payload. A nil entry marks a valid field.
type Errors map[string]Messages

// Valid reports whether no entry carries messages.
func (e Errors) Valid() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Has reports whether name has at least one message.
func (e Errors) Has(name string) bool {
	return len(e[name]) > 0
}

// First returns the first message for name, or "".
func (e Errors) First(name string) string {
	if msgs := e[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Equal compares two error mappings. A missing key equals a nil or empty entry.
func (e Errors) Equal(other Errors) bool {
	for name, msgs := range e {
		if !slices.Equal(msgs, other[name]) {
			return false
		}
	}
	for name, msgs := range other {
		if _, ok := e[name]; !ok && len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Merge returns a new mapping with e and then others applied in order.
// On key collision the later mapping wins.
func (e Errors) Merge(others ...Errors) Errors {
	out := e.Clone()
	for _, o := range others {
		for name, msgs := range o {
			out[name] = msgs.Clone()
		}
	}
	return out
}

func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for name, msgs := range e {
		out[name] = msgs.Clone()
	}
	return out
}

// State is the snapshot a Fieldset validates against.
type State struct {
	Values Values
}

// ValidationFunc is the uniform contract every adapter produces.
// A nil error means the value is valid; any other error is a failure whose
// payload is extracted with MessagesOf.
type ValidationFunc func(ctx context.Context, value any, values Values) error
