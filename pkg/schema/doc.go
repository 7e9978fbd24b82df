// Package schema provides go-playground/validator backed schemas for the
// formstate "schema" adapter.
//
// A Schema validates one form value against a validator tag string:
//
//	email := schema.Must("required,email")
//	confirm := schema.Must("eqfield", schema.WithCompareField("password"))
//
//	fs, err := formstate.NewFieldset(formstate.AdapterSchema, []formstate.FieldRule{
//		{Name: "email", Rule: email},
//		{Name: "confirm", Rule: confirm},
//	})
//
// Failure messages follow the "this <predicate>" form ("this is a required field");
// the adapter strips the leading subject before storing them on the field.
//
// Custom tags are registered on the shared engine with RegisterValidation. The
// full value set is attached to the context and can be read with
// ValuesFromContext.
package schema
