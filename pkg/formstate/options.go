package formstate

import (
	"log/slog"
	"time"
)

// Option configures a Fieldset.
type Option func(*options)

type options struct {
	log         *slog.Logger
	adapterFunc AdapterFunc
	timeout     time.Duration
}

// WithLogger sets the logger used for validation diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithAdapterFunc replaces the named adapter with a custom normalisation strategy.
// The adapter name passed to NewFieldset is then only used as a label.
func WithAdapterFunc(fn AdapterFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.adapterFunc = fn
		}
	}
}

// WithValidationTimeout bounds every rule run with a context deadline.
// Zero or negative disables the bound.
func WithValidationTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
