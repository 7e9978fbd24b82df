package sanitizer

import (
	"fmt"
	"strings"
)

var registry = map[string]Func{
	"trim":        Trim,
	"lower":       ToLower,
	"upper":       ToUpper,
	"whitespace":  NormalizeWhitespace,
	"single_line": SingleLine,
	"control":     RemoveControlChars,
	"strip_html":  StripHTML,
	"digits":      KeepDigits,
	"nfc":         NFC,
	"email":       NormalizeEmail,
}

// ByName returns the sanitizer registered under name.
func ByName(name string) (Func, error) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
	}
	return fn, nil
}

// Pipeline composes the named sanitizers in order.
func Pipeline(names ...string) (Func, error) {
	fns := make([]Func, 0, len(names))
	for _, name := range names {
		fn, err := ByName(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return Compose(fns...), nil
}

// Names lists the registered sanitizer names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
