package formstate

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Adapter names a strategy that normalises a library-specific rule into a ValidationFunc.
type Adapter string

const (
	// AdapterNative takes rules that already are ValidationFuncs.
	AdapterNative Adapter = "native"
	// AdapterPlain takes synchronous PlainFunc predicates.
	AdapterPlain Adapter = "plain"
	// AdapterSchema takes Schema values and strips SchemaMessagePrefix from their messages.
	AdapterSchema Adapter = "schema"
	// AdapterRules takes RulesFunc builders of validator.Rule values.
	AdapterRules Adapter = "rules"
)

// SchemaMessagePrefix is the leading phrase schema validators put on every message.
const SchemaMessagePrefix = "this "

// AdapterFunc converts one raw rule into a ValidationFunc.
// It returns an error wrapping ErrInvalidRule when the rule has the wrong shape.
type AdapterFunc func(rule any) (ValidationFunc, error)

// PlainResult is what a PlainFunc reports.
type PlainResult struct {
	IsValid bool
	Errors  []string
}

// PlainFunc is a synchronous predicate over a value and the whole value set.
type PlainFunc func(value any, values Values) PlainResult

// Schema validates a value with the full value set available as context data.
// Failures should implement Messages() []string; any other error is reported
// by its text.
type Schema interface {
	Validate(ctx context.Context, value any, values Values) error
}

// RulesFunc builds validator rules for a value. The field name in the rules is
// only used for translation metadata.
type RulesFunc func(value any, values Values) []validator.Rule

var adapters = map[Adapter]AdapterFunc{
	AdapterNative: nativeAdapter,
	AdapterPlain:  plainAdapter,
	AdapterSchema: schemaAdapter,
	AdapterRules:  rulesAdapter,
}

// ParseAdapter resolves an adapter name, typically from configuration.
func ParseAdapter(name string) (Adapter, error) {
	a := Adapter(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := adapters[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAdapter, name)
	}
	return a, nil
}

func (a Adapter) String() string {
	return string(a)
}

// Func returns the normalisation strategy for a.
func (a Adapter) Func() (AdapterFunc, error) {
	fn, ok := adapters[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapter, string(a))
	}
	return fn, nil
}

func nativeAdapter(rule any) (ValidationFunc, error) {
	var fn ValidationFunc
	switch r := rule.(type) {
	case ValidationFunc:
		fn = r
	case func(context.Context, any, Values) error:
		fn = r
	}
	if fn == nil {
		return nil, invalidRule(AdapterNative, rule)
	}
	return fn, nil
}

func plainAdapter(rule any) (ValidationFunc, error) {
	var check PlainFunc
	switch fn := rule.(type) {
	case PlainFunc:
		check = fn
	case func(any, Values) PlainResult:
		check = fn
	default:
		return nil, invalidRule(AdapterPlain, rule)
	}
	if check == nil {
		return nil, invalidRule(AdapterPlain, rule)
	}

	return func(_ context.Context, value any, values Values) error {
		res := check(value, values)
		if res.IsValid {
			return nil
		}
		return Fail(res.Errors...)
	}, nil
}

func schemaAdapter(rule any) (ValidationFunc, error) {
	schema, ok := rule.(Schema)
	if !ok || schema == nil {
		return nil, invalidRule(AdapterSchema, rule)
	}

	return func(ctx context.Context, value any, values Values) error {
		if values == nil {
			values = Values{}
		}
		err := schema.Validate(ctx, value, values)
		if err == nil {
			return nil
		}

		msgs := MessagesOf(err)
		cleaned := make([]string, len(msgs))
		for i, msg := range msgs {
			cleaned[i] = strings.TrimPrefix(msg, SchemaMessagePrefix)
		}
		return Fail(cleaned...)
	}, nil
}

func rulesAdapter(rule any) (ValidationFunc, error) {
	var build RulesFunc
	switch fn := rule.(type) {
	case RulesFunc:
		build = fn
	case func(any, Values) []validator.Rule:
		build = fn
	default:
		return nil, invalidRule(AdapterRules, rule)
	}
	if build == nil {
		return nil, invalidRule(AdapterRules, rule)
	}

	return func(_ context.Context, value any, values Values) error {
		err := validator.Apply(build(value, values)...)
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			return Fail(verrs.Messages()...)
		}
		return err
	}, nil
}

func invalidRule(a Adapter, rule any) error {
	return fmt.Errorf("%w: %s adapter cannot use %T", ErrInvalidRule, a, rule)
}
