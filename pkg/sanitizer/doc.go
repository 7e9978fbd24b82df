// Package sanitizer cleans raw form input before it is stored and validated.
//
// Every helper is a Func (string in, string out) and can be chained:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeEmail)
//	clean("  Ada..Lovelace@Example.com ") // "ada.lovelace@example.com"
//
// Sanitizers are also registered by name ("trim", "lower", "email", ...) so form
// definitions can reference them; see ByName and Pipeline.
package sanitizer
