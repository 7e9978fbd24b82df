// Package form provides a headless form controller on top of formstate.
//
// A Form keeps the current values, feeds change, blur and submit events to its
// Fieldset and reports the merged error state:
//
//	fs := formstate.MustFieldset(formstate.AdapterSchema, rules)
//	f, err := form.New(fs, form.WithExternalErrors(serverErrs))
//
//	res := f.Change(ctx, "email", r.FormValue("email"))
//	if !res.IsValid {
//		// render res.Errors next to the inputs
//	}
//
// External errors (for example, a uniqueness check done on save) override the
// field errors of the same name and keep the form invalid until they are cleared
// with SetExternalErrors.
package form
