// Package validator provides small declarative validation rules for form values.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Apply evaluates rules in order and aggregates failures into ValidationErrors,
// which implements error. Rules are plain values; the package keeps no state
// and is safe for concurrent use.
//
// Rule families:
//   - string_rules.go  – required, min/max length (rune based)
//   - format_rules.go  – email, regular expression
//   - numeric_rules.go – min, max, range for any Numeric type
//   - choice_rules.go  – membership in a fixed list
//   - field_rules.go   – cross-field rules reading another form value
//
// String and Float coerce the untyped values a form carries.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Messages()
//	}
//
// In a formstate Fieldset the same rules are used through the "rules" adapter,
// which returns the failed rules' messages as the field's error payload.
package validator
