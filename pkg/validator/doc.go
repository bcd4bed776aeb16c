// Package validator provides the primitive rules used to validate DTO field
// values: presence, type, length and numeric bounds, patterns, enum membership,
// UUIDs, and email, URL and phone shapes.
//
// A Rule is a named, pure Check over a raw value together with a
// translation-friendly error description. Rules are built once and reused for
// every request. Validate runs a rule against one value, optionally against
// every element of a sequence, and reports the first failing element with its
// index. Rules are total: a value of an unexpected type simply fails.
//
// # Architecture
//
// Each source file groups a family of rules (`type_rules.go`,
// `string_rules.go`, `numeric_rules.go`, `uuid_rules.go`, etc.). Every
// exported constructor returns a Rule value; there is no hidden global state,
// so rules are safe for concurrent use. The only lazily initialized rule,
// IsOneOf, memoizes its accessor with sync.OnceValue.
//
// # Usage
//
//	rule := validator.MinLength(3)
//	if err := rule.Validate("name", "ab", false); err != nil {
//		// err.Field == "name", err.Rule == "min_length"
//	}
//
//	err := validator.Apply("age", 17, validator.IsInteger(), validator.Min(18))
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Individual failures can be inspected with Has, HasRule, Get,
// GetErrors and Fields.
package validator
