package sanitizer

import "errors"

var ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")
