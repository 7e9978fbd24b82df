package formstate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/formstate"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// fakeSchema mimics a schema library: messages start with "this ".
type fakeSchema struct {
	err        error
	gotValue   any
	gotValues  formstate.Values
	callsCount int
}

func (s *fakeSchema) Validate(_ context.Context, value any, values formstate.Values) error {
	s.callsCount++
	s.gotValue = value
	s.gotValues = values
	return s.err
}

func adapt(t *testing.T, a formstate.Adapter, rule any) formstate.ValidationFunc {
	t.Helper()
	fn, err := a.Func()
	require.NoError(t, err)
	v, err := fn(rule)
	require.NoError(t, err)
	return v
}

func TestParseAdapter(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"native", "plain", "schema", "rules", " Plain "} {
		a, err := formstate.ParseAdapter(name)
		require.NoError(t, err, name)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(name)), a.String())
	}

	_, err := formstate.ParseAdapter("yup")
	assert.ErrorIs(t, err, formstate.ErrUnknownAdapter)

	_, err = formstate.Adapter("yup").Func()
	assert.ErrorIs(t, err, formstate.ErrUnknownAdapter)
}

func TestNativeAdapter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v := adapt(t, formstate.AdapterNative, func(context.Context, any, formstate.Values) error {
		return formstate.Fail("native")
	})
	assert.Equal(t, formstate.Messages{"native"}, formstate.MessagesOf(v(ctx, nil, nil)))

	fn, _ := formstate.AdapterNative.Func()
	_, err := fn(formstate.ValidationFunc(nil))
	assert.ErrorIs(t, err, formstate.ErrInvalidRule)
	_, err = fn(42)
	assert.ErrorIs(t, err, formstate.ErrInvalidRule)
}

func TestPlainAdapter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	minLen := formstate.PlainFunc(func(value any, _ formstate.Values) formstate.PlainResult {
		if s, _ := value.(string); len(s) >= 3 {
			return formstate.PlainResult{IsValid: true}
		}
		return formstate.PlainResult{Errors: []string{"is too short"}}
	})
	v := adapt(t, formstate.AdapterPlain, minLen)

	t.Run("resolves when valid", func(t *testing.T) {
		assert.NoError(t, v(ctx, "abcd", nil))
	})

	t.Run("rejects with the rule errors", func(t *testing.T) {
		err := v(ctx, "ab", nil)
		require.Error(t, err)
		assert.Equal(t, formstate.Messages{"is too short"}, formstate.MessagesOf(err))
	})

	t.Run("sees all values", func(t *testing.T) {
		confirm := adapt(t, formstate.AdapterPlain, func(value any, values formstate.Values) formstate.PlainResult {
			return formstate.PlainResult{IsValid: value == values["password"], Errors: []string{"must match password"}}
		})
		assert.NoError(t, confirm(ctx, "x", formstate.Values{"password": "x"}))
		assert.Error(t, confirm(ctx, "y", formstate.Values{"password": "x"}))
	})

	t.Run("invalid without errors reports generic message", func(t *testing.T) {
		bare := adapt(t, formstate.AdapterPlain, func(any, formstate.Values) formstate.PlainResult {
			return formstate.PlainResult{}
		})
		assert.Equal(t, formstate.Messages{formstate.MessageInvalid}, formstate.MessagesOf(bare(ctx, nil, nil)))
	})

	t.Run("rejects wrong rule type", func(t *testing.T) {
		fn, _ := formstate.AdapterPlain.Func()
		_, err := fn(func() bool { return true })
		assert.ErrorIs(t, err, formstate.ErrInvalidRule)
		_, err = fn(formstate.PlainFunc(nil))
		assert.ErrorIs(t, err, formstate.ErrInvalidRule)
	})
}

func TestSchemaAdapter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("passes value and values as context", func(t *testing.T) {
		s := &fakeSchema{}
		v := adapt(t, formstate.AdapterSchema, s)
		values := formstate.Values{"email": "a@b.co"}

		require.NoError(t, v(ctx, "a@b.co", values))
		assert.Equal(t, "a@b.co", s.gotValue)
		assert.Equal(t, values, s.gotValues)
	})

	t.Run("defaults values to empty set", func(t *testing.T) {
		s := &fakeSchema{}
		v := adapt(t, formstate.AdapterSchema, s)
		require.NoError(t, v(ctx, "x", nil))
		assert.NotNil(t, s.gotValues)
	})

	t.Run("strips the leading phrase", func(t *testing.T) {
		s := &fakeSchema{err: formstate.Fail("this is a required field", "this must be a valid email", "must be this long")}
		v := adapt(t, formstate.AdapterSchema, s)

		msgs := formstate.MessagesOf(v(ctx, "", nil))
		assert.Equal(t, formstate.Messages{"is a required field", "must be a valid email", "must be this long"}, msgs)
	})

	t.Run("plain errors are reported by text", func(t *testing.T) {
		s := &fakeSchema{err: errors.New("this failed")}
		v := adapt(t, formstate.AdapterSchema, s)
		assert.Equal(t, formstate.Messages{"failed"}, formstate.MessagesOf(v(ctx, "", nil)))
	})

	t.Run("rejects non-schema rules", func(t *testing.T) {
		fn, _ := formstate.AdapterSchema.Func()
		_, err := fn("required")
		assert.ErrorIs(t, err, formstate.ErrInvalidRule)
		_, err = fn(nil)
		assert.ErrorIs(t, err, formstate.ErrInvalidRule)
	})
}

func TestRulesAdapter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	password := formstate.RulesFunc(func(value any, _ formstate.Values) []validator.Rule {
		s := validator.String(value)
		return []validator.Rule{
			validator.Required("password", s),
			validator.MinLenString("password", s, 8),
		}
	})
	v := adapt(t, formstate.AdapterRules, password)

	assert.NoError(t, v(ctx, "long enough", nil))
	assert.Equal(t,
		formstate.Messages{"field is required", "must be at least 8 characters long"},
		formstate.MessagesOf(v(ctx, "", nil)),
	)

	confirm := adapt(t, formstate.AdapterRules, func(value any, values formstate.Values) []validator.Rule {
		return []validator.Rule{validator.EqualField("password_confirmation", value, "password", values["password"])}
	})
	assert.Equal(t,
		formstate.Messages{"must match password"},
		formstate.MessagesOf(confirm(ctx, "a", formstate.Values{"password": "b"})),
	)

	fn, _ := formstate.AdapterRules.Func()
	_, err := fn(validator.Rule{})
	assert.ErrorIs(t, err, formstate.ErrInvalidRule)
}

func TestAdaptersInFieldset(t *testing.T) {
	t.Parallel()

	fs, err := formstate.NewFieldset(formstate.AdapterPlain, []formstate.FieldRule{
		{Name: "name", Rule: formstate.PlainFunc(func(value any, _ formstate.Values) formstate.PlainResult {
			return formstate.PlainResult{IsValid: value != "", Errors: []string{"can't be blank"}}
		})},
	})
	require.NoError(t, err)

	fs.TriggerSubmit()
	errs := fs.Validate(context.Background(), formstate.State{Values: formstate.Values{"name": ""}})
	assert.Equal(t, formstate.Errors{"name": {"can't be blank"}}, errs)
}
