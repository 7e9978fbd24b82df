package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Adapter records the rule adapter name under the key "adapter".
func Adapter(name string) slog.Attr {
	return slog.String("adapter", name)
}

// Event records a form event (change, blur, submit) under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// FormID records the form instance identifier under the key "form_id".
// If id is nil, it returns an empty Attr.
func FormID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("form_id", id)
}

// Messages records validation messages under the key "messages".
// An empty list yields an empty Attr.
func Messages(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any("messages", msgs)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
