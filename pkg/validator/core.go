package validator

import (
	"errors"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is one failed rule. TranslationKey and TranslationValues
// carry enough to re-render Message in another locale.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors lists failed rules in the order they were applied.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Messages flattens the list into field messages, dropping field names.
func (ve ValidationErrors) Messages() []string {
	if len(ve) == 0 {
		return nil
	}
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.Message
	}
	return out
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failed ones,
// or nil. Rules without a Check are skipped.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, r := range rules {
		if r.Check != nil && !r.Check() {
			failed = append(failed, r.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
