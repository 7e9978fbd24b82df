package form

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/formstate"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Event names the interaction that triggered a validation cycle.
type Event string

const (
	EventChange Event = "change"
	EventBlur   Event = "blur"
	EventSubmit Event = "submit"
)

// Result is the form state after an event.
type Result struct {
	Event   Event
	Values  formstate.Values
	Errors  formstate.Errors
	IsValid bool
}

// Form is a headless controller over a Fieldset. It owns the current values,
// keeps the last validation outcome and merges it with external errors.
// Event methods on one Form are serialised.
type Form struct {
	id string
	fs *formstate.Fieldset

	mu       sync.Mutex
	values   formstate.Values
	errors   formstate.Errors
	external formstate.Errors

	sanitizers map[string][]func(string) string

	log      *slog.Logger
	onChange Callback
	onBlur   Callback
	onSubmit Callback
}

// New creates a Form driving fs.
func New(fs *formstate.Fieldset, opts ...Option) (*Form, error) {
	if fs == nil {
		return nil, ErrNilFieldset
	}

	f := &Form{
		id:     uuid.NewString(),
		fs:     fs,
		values: formstate.Values{},
		errors: formstate.Errors{},
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	for name, value := range f.values {
		f.values[name] = f.sanitize(name, value)
	}
	f.log = f.log.With(logger.FormID(f.id))

	return f, nil
}

// HasField reports whether the fieldset declares name.
func (f *Form) HasField(name string) bool {
	_, ok := f.fs.Field(name)
	return ok
}

// ID identifies the form instance in logs.
func (f *Form) ID() string {
	return f.id
}

// Change stores value under name, marks the field changed and validates.
// A nil value is stored as "".
func (f *Form) Change(ctx context.Context, name string, value any) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[name] = f.sanitize(name, orEmpty(value))
	f.fs.TriggerChange(name)
	return f.validate(ctx, EventChange, f.onChange)
}

// Blur stores value under name, marks the field blurred and validates.
// A nil value is stored as "".
func (f *Form) Blur(ctx context.Context, name string, value any) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[name] = f.sanitize(name, orEmpty(value))
	f.fs.TriggerBlur(name)
	return f.validate(ctx, EventBlur, f.onBlur)
}

// Submit makes every field eligible and validates the current values.
func (f *Form) Submit(ctx context.Context) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fs.TriggerSubmit()
	return f.validate(ctx, EventSubmit, f.onSubmit)
}

// Values returns a copy of the current values.
func (f *Form) Values() formstate.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Clone()
}

// Errors returns field errors merged with external errors; external entries win.
func (f *Form) Errors() formstate.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Merge(f.external)
}

// IsValid reports whether both field errors and external errors are empty.
func (f *Form) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Valid() && f.external.Valid()
}

// SetExternalErrors replaces the external errors, e.g. after a failed save.
func (f *Form) SetExternalErrors(errs formstate.Errors) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.external = errs.Clone()
}

func (f *Form) validate(ctx context.Context, event Event, cb Callback) Result {
	log := f.log.With(logger.Event(string(event)))

	if !f.fs.NeedsValidation() {
		log.DebugContext(ctx, "no pending validation")
	}

	errs := f.fs.Validate(ctx, formstate.State{Values: f.values.Clone()})
	f.errors = f.errors.Merge(errs)

	res := Result{
		Event:   event,
		Values:  f.values.Clone(),
		Errors:  f.errors.Merge(f.external),
		IsValid: f.errors.Valid() && f.external.Valid(),
	}

	log.DebugContext(ctx, "form event handled", slog.Bool("valid", res.IsValid))

	if cb != nil {
		cb(ctx, res)
	}
	return res
}

// sanitize applies the field's sanitizers to string and []string values.
func (f *Form) sanitize(name string, value any) any {
	fns := f.sanitizers[name]
	if len(fns) == 0 {
		return value
	}
	clean := func(s string) string {
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}

	switch v := value.(type) {
	case string:
		return clean(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = clean(s)
		}
		return out
	default:
		return value
	}
}

func orEmpty(value any) any {
	if value == nil {
		return ""
	}
	return value
}

// ValuesFromURL converts submitted form data to Values. Single values are
// stored as strings, repeated keys as []string.
func ValuesFromURL(data url.Values) formstate.Values {
	out := make(formstate.Values, len(data))
	for key, vals := range data {
		switch len(vals) {
		case 0:
			out[key] = ""
		case 1:
			out[key] = vals[0]
		default:
			out[key] = append([]string(nil), vals...)
		}
	}
	return out
}
