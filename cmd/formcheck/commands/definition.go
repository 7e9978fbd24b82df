package commands

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/formstate"
	"github.com/dmitrymomot/formstate/pkg/sanitizer"
	"github.com/dmitrymomot/formstate/pkg/schema"
)

// Definition is the YAML form layout read by formcheck:
//
//	name: signup
//	fields:
//	  - name: email
//	    rule: required,email
//	    sanitize: [trim, email]
//	  - name: confirm
//	    rule: eqfield
//	    compare: password
//	    messages:
//	      eqfield: must match the password
type Definition struct {
	Name   string            `yaml:"name,omitempty"`
	Fields []FieldDefinition `yaml:"fields"`
}

// FieldDefinition declares one field. Rule is a validator tag string.
type FieldDefinition struct {
	Name     string            `yaml:"name"`
	Rule     string            `yaml:"rule"`
	Compare  string            `yaml:"compare,omitempty"`
	Messages map[string]string `yaml:"messages,omitempty"`
	Sanitize []string          `yaml:"sanitize,omitempty"`
}

// FormOptions returns the sanitizers declared by the definition as form options.
func (d *Definition) FormOptions() ([]form.Option, error) {
	var opts []form.Option
	for _, fd := range d.Fields {
		if len(fd.Sanitize) == 0 {
			continue
		}
		fn, err := sanitizer.Pipeline(fd.Sanitize...)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		opts = append(opts, form.WithSanitizer(fd.Name, fn))
	}
	return opts, nil
}

// ParseDefinition decodes a Definition and builds a schema for every field.
func ParseDefinition(r io.Reader) (*Definition, []formstate.FieldRule, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, errors.Join(ErrReadDefinition, err)
	}
	if len(def.Fields) == 0 {
		return nil, nil, ErrNoFields
	}

	rules := make([]formstate.FieldRule, 0, len(def.Fields))
	for _, fd := range def.Fields {
		opts := make([]schema.Option, 0, len(fd.Messages)+1)
		if fd.Compare != "" {
			opts = append(opts, schema.WithCompareField(fd.Compare))
		}
		for tag, msg := range fd.Messages {
			opts = append(opts, schema.WithMessage(tag, msg))
		}

		s, err := schema.New(fd.Rule, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}
		rules = append(rules, formstate.FieldRule{Name: fd.Name, Rule: s})
	}

	if _, err := def.FormOptions(); err != nil {
		return nil, nil, err
	}

	return &def, rules, nil
}

// ParseValues decodes a YAML mapping of field values. Empty input yields no values.
func ParseValues(r io.Reader) (formstate.Values, error) {
	values := formstate.Values{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrReadValues, err)
	}
	return values, nil
}
