package formstate

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// FieldRule declares one field and its library-specific rule.
// Declaration order is the order fields are stored, triggered and merged in.
type FieldRule struct {
	Name string
	Rule any
}

// Fieldset owns an ordered collection of fields sharing one validation cycle.
type Fieldset struct {
	adapter Adapter
	fields  []*Field
	index   map[string]int
	opts    options

	// validating is a one-slot semaphore serialising Validate calls.
	validating chan struct{}
}

// NewFieldset builds one Field per rule, normalising each rule with adapter.
// Unknown adapters, rules that do not fit the adapter, empty and duplicate
// names are rejected.
func NewFieldset(adapter Adapter, rules []FieldRule, opts ...Option) (*Fieldset, error) {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	normalize := o.adapterFunc
	if normalize == nil {
		fn, err := adapter.Func()
		if err != nil {
			return nil, err
		}
		normalize = fn
	}

	fs := &Fieldset{
		adapter:    adapter,
		fields:     make([]*Field, 0, len(rules)),
		index:      make(map[string]int, len(rules)),
		opts:       o,
		validating: make(chan struct{}, 1),
	}

	for _, r := range rules {
		if r.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, exists := fs.index[r.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, r.Name)
		}

		validation, err := normalize(r.Rule)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", r.Name, err)
		}

		field := NewField(r.Name, validation)
		field.timeout = o.timeout
		field.log = o.log.With(logger.Adapter(adapter.String()))

		fs.index[r.Name] = len(fs.fields)
		fs.fields = append(fs.fields, field)
	}

	return fs, nil
}

// MustFieldset is like NewFieldset but panics on error.
func MustFieldset(adapter Adapter, rules []FieldRule, opts ...Option) *Fieldset {
	fs, err := NewFieldset(adapter, rules, opts...)
	if err != nil {
		panic(err)
	}
	return fs
}

func (fs *Fieldset) Adapter() Adapter {
	return fs.adapter
}

// Fields returns the fields in declaration order.
func (fs *Fieldset) Fields() []*Field {
	out := make([]*Field, len(fs.fields))
	copy(out, fs.fields)
	return out
}

// Field looks a field up by name.
func (fs *Fieldset) Field(name string) (*Field, bool) {
	i, ok := fs.index[name]
	if !ok {
		return nil, false
	}
	return fs.fields[i], true
}

func (fs *Fieldset) Len() int {
	return len(fs.fields)
}

// TriggerSubmit blurs every field, making all of them eligible for validation.
func (fs *Fieldset) TriggerSubmit() {
	for _, f := range fs.fields {
		f.Blur()
	}
}

// TriggerChange flags the named field as changed. Unknown names are ignored.
func (fs *Fieldset) TriggerChange(name string) {
	if f, ok := fs.Field(name); ok {
		f.Change()
	}
}

// TriggerBlur blurs the named field. Unknown names are ignored.
func (fs *Fieldset) TriggerBlur(name string) {
	if f, ok := fs.Field(name); ok {
		f.Blur()
	}
}

// NeedsValidation reports whether any field is pending.
func (fs *Fieldset) NeedsValidation() bool {
	for _, f := range fs.fields {
		if f.NeedsValidation() {
			return true
		}
	}
	return false
}

// Validate runs every field's validation concurrently against state, waits
// for all of them and merges the per-field mappings in declaration order.
// It never fails; the result holds one entry per field, nil when valid.
//
// Calls on the same Fieldset are serialised. If ctx is done while waiting
// for an earlier call, the current error state is returned without running
// any rule.
func (fs *Fieldset) Validate(ctx context.Context, state State) Errors {
	select {
	case fs.validating <- struct{}{}:
	default:
		select {
		case fs.validating <- struct{}{}:
		case <-ctx.Done():
			return fs.Errors()
		}
	}
	defer func() { <-fs.validating }()

	start := time.Now()
	results := async.Collect(ctx, fs.fields, func(ctx context.Context, f *Field) (Errors, error) {
		return f.Validate(ctx, state.Values[f.name], state.Values), nil
	})

	merged := make(Errors, len(fs.fields))
	for i, res := range results {
		if res.Err != nil {
			// Field.Validate recovers rule panics, so this only guards the join itself.
			fs.opts.log.ErrorContext(ctx, "field validation aborted",
				logger.Field(fs.fields[i].name),
				logger.Error(res.Err),
			)
			merged[fs.fields[i].name] = Messages{MessageInvalid}
			continue
		}
		maps.Copy(merged, res.Value)
	}

	fs.opts.log.DebugContext(ctx, "fieldset validated",
		logger.Adapter(fs.adapter.String()),
		logger.Duration(time.Since(start)),
		slog.Bool("valid", merged.Valid()),
	)

	return merged
}

// Errors returns the current error state of every field without validating.
func (fs *Fieldset) Errors() Errors {
	out := make(Errors, len(fs.fields))
	for _, f := range fs.fields {
		maps.Copy(out, f.Error())
	}
	return out
}
