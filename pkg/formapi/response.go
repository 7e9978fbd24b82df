package formapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formstate/pkg/form"
)

// Response is the JSON body returned for a validation request.
// Errors lists only fields that failed.
type Response struct {
	Form   string              `json:"form"`
	Event  string              `json:"event"`
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// ErrorResponse is returned when the request itself cannot be served.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newResponse(name string, res form.Result) Response {
	out := Response{
		Form:  name,
		Event: string(res.Event),
		Valid: res.IsValid,
	}
	for field, msgs := range res.Errors {
		if len(msgs) == 0 {
			continue
		}
		if out.Errors == nil {
			out.Errors = make(map[string][]string)
		}
		out.Errors[field] = msgs
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownForm), errors.Is(err, ErrUnknownField):
		status = http.StatusNotFound
	case errors.Is(err, ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, ErrInvalidBody):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
