// Package sanitizer provides the transforms and coercions applied to DTO field
// values before they are validated.
//
// The functions are grouped into three areas:
//
//   - Strings – trimming and locale-independent case conversion
//     (golang.org/x/text/cases).
//
//   - Format – phone number normalisation to E.164 and e-mail cleanup.
//
//   - Coercion – best-effort conversion of raw request values to the declared
//     field type: numbers, booleans, dates and sequences.
//
// String helpers have the plain `func(string) string` shape. Lift adapts them
// to raw values so they can run inside a field pipeline: strings are
// transformed, sequences are transformed element by element and anything else
// passes through unchanged. Apply and Compose build pipelines from either form:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Lift(sanitizer.Trim),
//	    sanitizer.Lift(sanitizer.ToLower),
//	)
//
//	clean("  MiXeD ")            // "mixed"
//	clean([]any{" A ", 1})       // []any{"a", 1}
//
// # Error handling
//
// Transforms never fail – they fall back to the original input. Coercions
// return the converted value and a boolean; callers decide how to report a
// value that could not be converted.
//
// # Concurrency
//
// There is no shared state. A fresh cases.Caser is created per call because
// Casers are stateful, so every helper is safe for concurrent use.
package sanitizer
