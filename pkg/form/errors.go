package form

import "errors"

var ErrNilFieldset = errors.New("form: nil fieldset")
