// Package binder turns HTTP requests into presence maps and runs them
// through a field.Schema.
//
// Extractors read one part of the request:
//
//   - JSON(): a JSON object body, numbers kept as json.Number
//   - Form(): urlencoded or multipart form values
//   - Query(): URL query parameters
//   - Path(extract, names...): route parameters via the router's lookup
//
// A key is present in the map only when the client sent it, which is what
// optional fields rely on. Repeated form or query keys become sequences.
// Merge combines extractors.
//
// # Usage
//
//	var req SignupRequest
//	err := binder.Bind(r, signupSchema, &req,
//		binder.WithExtractor(binder.Merge(binder.Query(), binder.JSON())),
//		binder.WithLogger(log),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// respond 422 with errs
//	}
//
// # Errors
//
// Transport problems wrap ErrMissingContentType, ErrUnsupportedMediaType,
// ErrFailedToParseJSON, ErrFailedToParseForm or ErrFailedToParseQuery.
// Validation problems are validator.ValidationErrors. ErrInvalidTarget means
// the validated output could not be decoded into the destination.
package binder
