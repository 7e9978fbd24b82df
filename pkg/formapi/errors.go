package formapi

import "errors"

var (
	ErrUnknownForm          = errors.New("unknown form")
	ErrUnknownField         = errors.New("unknown field")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidBody          = errors.New("invalid request body")
)
