package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// EqualField validates that value equals the value of another form field,
// e.g. a password confirmation.
func EqualField(field string, value any, otherField string, otherValue any) Rule {
	return Rule{
		Check: func() bool {
			return reflect.DeepEqual(value, otherValue)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", otherField),
			TranslationKey: "validation.equal_field",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// RequiredIf validates that value is present whenever condition holds.
func RequiredIf(field, value string, condition bool) Rule {
	return Rule{
		Check: func() bool {
			return !condition || strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required_if",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
