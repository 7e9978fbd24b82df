package commands

import "errors"

var (
	ErrInvalidForm       = errors.New("form is invalid")
	ErrMissingDefinition = errors.New("form definition is required")
	ErrNoFields          = errors.New("form definition has no fields")
	ErrReadDefinition    = errors.New("failed to read form definition")
	ErrReadValues        = errors.New("failed to read form values")
)
