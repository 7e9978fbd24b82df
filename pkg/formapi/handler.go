package formapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/formstate"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

const defaultMaxBodySize = 1 << 20

// Factory builds a fresh Fieldset for one request.
// Fieldsets carry per-interaction flags and are never shared between requests.
type Factory func() (*formstate.Fieldset, error)

// RequestIDExtractor adds the chi request ID to log records as "request_id".
// Pass it to logger.WithContextExtractors for the logger given to WithLogger.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

// Handler serves server-side validation for a set of named forms.
type Handler struct {
	forms    map[string]Factory
	formOpts map[string][]form.Option
	log      *slog.Logger
	maxBody  int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodySize limits request bodies. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// WithFormOptions applies opts to every form.Form built for the named form,
// e.g. form.WithSanitizer.
func WithFormOptions(name string, opts ...form.Option) Option {
	return func(h *Handler) {
		h.formOpts[name] = append(h.formOpts[name], opts...)
	}
}

// NewHandler serves the given forms by name.
func NewHandler(forms map[string]Factory, opts ...Option) *Handler {
	h := &Handler{
		forms:    make(map[string]Factory, len(forms)),
		formOpts: make(map[string][]form.Option),
		log:      logger.Discard(),
		maxBody:  defaultMaxBodySize,
	}
	for name, f := range forms {
		h.forms[name] = f
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle returns the router:
//
//	GET  /forms                          list form names
//	POST /forms/{form}/submit            validate every field
//	POST /forms/{form}/fields/{field}    validate one field as if it was blurred
//
// Bodies are application/x-www-form-urlencoded or application/json objects.
// Valid forms answer 200, invalid ones 422.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/forms", h.list)
	r.Route("/forms/{form}", func(r chi.Router) {
		r.Post("/submit", h.submit)
		r.Post("/fields/{field}", h.blur)
	})

	return r
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.forms))
	for name := range h.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	writeJSON(w, http.StatusOK, map[string][]string{"forms": names})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "form")
	f, err := h.prepare(w, r, name)
	if err != nil {
		h.fail(w, r, name, err)
		return
	}

	h.respond(w, r, name, f.Submit(r.Context()))
}

func (h *Handler) blur(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "form")
	field := chi.URLParam(r, "field")

	f, err := h.prepare(w, r, name)
	if err != nil {
		h.fail(w, r, name, err)
		return
	}
	if !f.HasField(field) {
		h.fail(w, r, name, fmt.Errorf("%w: %q", ErrUnknownField, field))
		return
	}

	h.respond(w, r, name, f.Blur(r.Context(), field, f.Values()[field]))
}

// prepare builds a Form for name seeded with the request values.
func (h *Handler) prepare(w http.ResponseWriter, r *http.Request, name string) (*form.Form, error) {
	factory, ok := h.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}

	values, err := h.decode(w, r)
	if err != nil {
		return nil, err
	}

	fs, err := factory()
	if err != nil {
		return nil, err
	}

	log := h.log.With(slog.String("form", name))
	opts := append(slices.Clone(h.formOpts[name]), form.WithInitialValues(values), form.WithLogger(log))
	return form.New(fs, opts...)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (formstate.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	mediaType := "application/x-www-form-urlencoded"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errors.Join(ErrUnsupportedMediaType, err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		values := formstate.Values{}
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			return nil, errors.Join(ErrInvalidBody, err)
		}
		return values, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, errors.Join(ErrInvalidBody, err)
		}
		return form.ValuesFromURL(r.PostForm), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, name string, res form.Result) {
	status := http.StatusOK
	if !res.IsValid {
		status = http.StatusUnprocessableEntity
	}
	h.log.DebugContext(r.Context(), "form validated",
		slog.String("form", name),
		logger.Event(string(res.Event)),
		slog.Bool("valid", res.IsValid),
	)
	writeJSON(w, status, newResponse(name, res))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, name string, err error) {
	h.log.WarnContext(r.Context(), "form request rejected",
		slog.String("form", name),
		logger.Error(err),
	)
	writeError(w, err)
}
