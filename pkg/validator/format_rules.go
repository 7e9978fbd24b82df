package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// ValidEmail validates that a string is a single bare email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MatchesPattern validates a string against a compiled regular expression.
func MatchesPattern(field, value string, pattern *regexp.Regexp) Rule {
	expr := ""
	if pattern != nil {
		expr = pattern.String()
	}
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has an invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": expr,
			},
		},
	}
}
