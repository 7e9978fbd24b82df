// Package formstate tracks per-field validation state for a form and
// orchestrates validation across all of its fields.
//
// # Fields
//
// A Field carries two flags. Change marks it as needing validation; Blur does
// the same and additionally makes it eligible, once and for all. Validate only
// runs the rule while both flags are set, and always clears the pending flag,
// so a value is never checked before the user has left the field and never
// checked twice without an intervening change.
//
// # Fieldsets
//
// A Fieldset is built from an ordered list of FieldRule declarations and an
// Adapter. TriggerChange, TriggerBlur and TriggerSubmit forward input events to
// fields; unknown names are ignored. Validate runs every field concurrently,
// waits for all of them and merges the per-field results into one Errors map.
//
//	fs, err := formstate.NewFieldset(formstate.AdapterPlain, []formstate.FieldRule{
//	    {Name: "email", Rule: formstate.PlainFunc(checkEmail)},
//	    {Name: "password", Rule: formstate.PlainFunc(checkPassword)},
//	})
//	if err != nil {
//	    return err
//	}
//
//	fs.TriggerBlur("email")
//	errs := fs.Validate(ctx, formstate.State{Values: values})
//	if !errs.Valid() {
//	    // render errs.First("email") ...
//	}
//
// # Adapters
//
// Adapters normalise library-specific rules into a ValidationFunc:
//
//   - native – the rule already is a ValidationFunc
//   - plain  – PlainFunc returning PlainResult{IsValid, Errors}
//   - schema – a Schema (see pkg/schema); the "this " prefix is stripped from messages
//   - rules  – RulesFunc returning validator.Rule values
//
// The set is closed: NewFieldset fails with ErrUnknownAdapter for any other
// name. WithAdapterFunc plugs in a custom strategy of the same shape.
//
// # Error Handling
//
// Rule failures are data, not errors. Validate never returns an error; failed
// rules, timeouts and recovered panics end up as messages in the result.
// Construction errors wrap ErrUnknownAdapter, ErrInvalidRule,
// ErrDuplicateField or ErrEmptyFieldName.
package formstate
