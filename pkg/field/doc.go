// Package field composes per-field descriptors for DTO schemas.
//
// A descriptor bundles, in a fixed order, an optional input coercion, a list
// of transforms, a list of validation rules and the schema metadata published
// for the field. Builders exist for every supported kind:
//
//	name := field.String(field.StringOptions{MinLength: field.Ptr(3), ToLowerCase: true})
//	age := field.NumberOptional(field.NumberOptions{Minimum: field.Ptr(0.0), Int: true})
//	role := field.Enum(func() []Role { return AllRoles }, field.EnumOptions{Name: "Role"})
//
// Descriptors are grouped into a named Schema, which validates a presence map
// (keys missing from the map are absent) and returns the transformed output:
//
//	signup := field.NewSchema("SignupDto",
//		field.Named("name", name),
//		field.Named("age", age),
//	)
//	out, err := signup.Validate(input)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// errs.Get("name")
//	}
//
// Contradictory options are programmer errors: builders panic with a
// *ConfigurationError. Use Catch when options are read from configuration.
//
// Descriptors and schemas are immutable and safe for concurrent use. Enum
// value sets and nested translation schemas are resolved lazily and memoized.
package field
