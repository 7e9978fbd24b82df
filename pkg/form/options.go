package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/formstate"
)

// Callback receives the outcome of an event after validation has finished.
type Callback func(ctx context.Context, res Result)

// Option configures a Form.
type Option func(*Form)

// WithInitialValues seeds the form values. The map is copied.
func WithInitialValues(values formstate.Values) Option {
	return func(f *Form) {
		f.values = values.Clone()
	}
}

// WithExternalErrors sets errors reported outside the fieldset, e.g. by a server.
// They take precedence over field errors in Errors.
func WithExternalErrors(errs formstate.Errors) Option {
	return func(f *Form) {
		f.external = errs.Clone()
	}
}

// WithLogger sets the form logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithSanitizer cleans string values of field before they are stored.
// Repeated calls for the same field chain in order.
func WithSanitizer(field string, fn func(string) string) Option {
	return func(f *Form) {
		if fn == nil {
			return
		}
		if f.sanitizers == nil {
			f.sanitizers = make(map[string][]func(string) string)
		}
		f.sanitizers[field] = append(f.sanitizers[field], fn)
	}
}

func OnChange(fn Callback) Option {
	return func(f *Form) {
		f.onChange = fn
	}
}

func OnBlur(fn Callback) Option {
	return func(f *Form) {
		f.onBlur = fn
	}
}

// OnSubmit is called after every submit, valid or not. Check Result.IsValid.
func OnSubmit(fn Callback) Option {
	return func(f *Form) {
		f.onSubmit = fn
	}
}
