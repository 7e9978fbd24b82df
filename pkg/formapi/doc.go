// Package formapi exposes formstate validation over HTTP.
//
// Each request builds a fresh Fieldset from a Factory, seeds a form.Form with
// the decoded body and runs either a submit or a single-field blur:
//
//	h := formapi.NewHandler(map[string]formapi.Factory{
//		"signup": func() (*formstate.Fieldset, error) {
//			return formstate.NewFieldset(formstate.AdapterSchema, signupRules)
//		},
//	})
//
//	r := chi.NewRouter()
//	r.Mount("/api", h.Handle())
//
// Responses are JSON documents of type Response; request errors use
// ErrorResponse with 400, 404 or 415 status codes.
package formapi
