package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formstate/pkg/formstate"
)

var defaultValidate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Default returns the engine shared by schemas built without WithValidate.
func Default() *validator.Validate {
	return defaultValidate()
}

// RegisterValidation adds a custom tag to the shared engine. It must be called
// before any schema using the tag is built.
func RegisterValidation(tag string, fn validator.FuncCtx) error {
	if err := Default().RegisterValidationCtx(tag, fn); err != nil {
		return errors.Join(ErrInvalidTag, err)
	}
	return nil
}

// Schema validates a single form value against a go-playground/validator tag.
// It satisfies formstate.Schema.
type Schema struct {
	tag          string
	compareField string
	validate     *validator.Validate
	explicit     bool
	messages     map[string]string
}

var _ formstate.Schema = (*Schema)(nil)

// Option configures a Schema.
type Option func(*Schema)

// WithCompareField makes cross-field tags (eqfield, nefield, gtfield, ...)
// compare against the named form field's value.
func WithCompareField(name string) Option {
	return func(s *Schema) {
		s.compareField = name
	}
}

// WithValidate uses v instead of the shared engine.
func WithValidate(v *validator.Validate) Option {
	return func(s *Schema) {
		s.validate = v
		s.explicit = true
	}
}

// WithMessage overrides the message for tag. The "this " subject is added automatically.
func WithMessage(tag, message string) Option {
	return func(s *Schema) {
		if s.messages == nil {
			s.messages = make(map[string]string)
		}
		s.messages[tag] = message
	}
}

// New builds a Schema for tag, e.g. "required,email" or "required,min=8".
// Tags naming unregistered validations are rejected with ErrInvalidTag.
func New(tag string, opts ...Option) (*Schema, error) {
	s := &Schema{tag: strings.TrimSpace(tag)}
	for _, opt := range opts {
		opt(s)
	}
	if s.tag == "" {
		return nil, ErrEmptyTag
	}
	if s.validate == nil {
		if s.explicit {
			return nil, ErrNilValidator
		}
		s.validate = Default()
	}

	// Tag parsing happens on first use and panics on unknown validations.
	if err := s.checkTag(); err != nil {
		return nil, err
	}
	return s, nil
}

// Must is like New but panics on error.
func Must(tag string, opts ...Option) *Schema {
	s, err := New(tag, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Tag() string {
	return s.tag
}

// Validate checks value against the tag. values is attached to ctx and can be
// read by custom validations with ValuesFromContext.
func (s *Schema) Validate(ctx context.Context, value any, values formstate.Values) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w %q: %v", ErrInvalidTag, s.tag, r)
		}
	}()

	ctx = WithValues(ctx, values)

	if s.compareField != "" {
		err = s.validate.VarWithValueCtx(ctx, value, values[s.compareField], s.tag)
	} else {
		err = s.validate.VarCtx(ctx, value, s.tag)
	}
	return s.wrap(err)
}

func (s *Schema) wrap(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, messageFor(fe, s.compareField, s.messages))
	}
	return &Error{messages: msgs, cause: err}
}

// tagSamples cover the kinds tags can demand: dive needs a slice or map,
// most others accept nil.
var tagSamples = []any{nil, "", 0, []any{}, map[string]any{}}

// checkTag parses the tag by running it against each sample. Parse failures
// panic for every sample, so one clean run proves the tag.
func (s *Schema) checkTag() error {
	var first any
	for _, v := range tagSamples {
		r := s.try(v)
		if r == nil {
			return nil
		}
		if first == nil {
			first = r
		}
	}
	return fmt.Errorf("%w %q: %v", ErrInvalidTag, s.tag, first)
}

func (s *Schema) try(value any) (recovered any) {
	defer func() { recovered = recover() }()
	if s.compareField != "" {
		_ = s.validate.VarWithValue(value, nil, s.tag)
	} else {
		_ = s.validate.Var(value, s.tag)
	}
	return nil
}
