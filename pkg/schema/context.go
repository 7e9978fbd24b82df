package schema

import (
	"context"

	"github.com/dmitrymomot/formstate/pkg/formstate"
)

type valuesKey struct{}

// WithValues attaches the full form value set to ctx.
func WithValues(ctx context.Context, values formstate.Values) context.Context {
	return context.WithValue(ctx, valuesKey{}, values)
}

// ValuesFromContext returns the form values attached by Schema.Validate.
// Custom validations registered with RegisterValidationCtx use it to read
// other fields.
func ValuesFromContext(ctx context.Context) (formstate.Values, bool) {
	values, ok := ctx.Value(valuesKey{}).(formstate.Values)
	return values, ok
}
