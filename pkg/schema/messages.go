package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const subject = "this "

// messageFor renders a yup-style message for one failed tag.
// compareField names the other form field for cross-field tags.
func messageFor(fe validator.FieldError, compareField string, overrides map[string]string) string {
	if msg, ok := overrides[fe.Tag()]; ok {
		return subject + msg
	}

	param := fe.Param()
	if compareField != "" && strings.HasSuffix(fe.Tag(), "field") {
		param = compareField
	}

	var body string
	switch fe.Tag() {
	case "required":
		body = "is a required field"
	case "email":
		body = "must be a valid email"
	case "url", "http_url":
		body = "must be a valid URL"
	case "uuid", "uuid4":
		body = "must be a valid UUID"
	case "numeric", "number":
		body = "must be a number"
	case "alpha":
		body = "must contain only letters"
	case "alphanum":
		body = "must contain only letters and numbers"
	case "oneof":
		body = fmt.Sprintf("must be one of the following values: %s", strings.Join(strings.Fields(param), ", "))
	case "len":
		body = sized(fe.Kind(), "must be exactly %s characters", "must be exactly %s items", "must be equal to %s", param)
	case "min":
		body = sized(fe.Kind(), "must be at least %s characters", "must have at least %s items", "must be greater than or equal to %s", param)
	case "max":
		body = sized(fe.Kind(), "must be at most %s characters", "must have at most %s items", "must be less than or equal to %s", param)
	case "gt":
		body = fmt.Sprintf("must be greater than %s", param)
	case "gte":
		body = fmt.Sprintf("must be greater than or equal to %s", param)
	case "lt":
		body = fmt.Sprintf("must be less than %s", param)
	case "lte":
		body = fmt.Sprintf("must be less than or equal to %s", param)
	case "eqfield":
		body = fmt.Sprintf("must match %s", param)
	case "nefield":
		body = fmt.Sprintf("must not match %s", param)
	case "gtfield":
		body = fmt.Sprintf("must be greater than %s", param)
	case "gtefield":
		body = fmt.Sprintf("must be greater than or equal to %s", param)
	case "ltfield":
		body = fmt.Sprintf("must be less than %s", param)
	case "ltefield":
		body = fmt.Sprintf("must be less than or equal to %s", param)
	default:
		body = fmt.Sprintf("failed the %q check", fe.Tag())
	}
	return subject + body
}

func sized(kind reflect.Kind, text, collection, number, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf(text, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf(collection, param)
	default:
		return fmt.Sprintf(number, param)
	}
}
