// Package fieldkit composes request field specifications for HTTP backends.
//
// A field specification is a descriptor built from one of the kind builders in
// pkg/field. It bundles coercion, normalizing transforms, validation rules and
// the schema metadata published in API documentation. Descriptors are grouped
// into named schemas which validate presence maps decoded from requests.
//
// Packages:
//
//   - pkg/validator: primitive rules and the ValidationErrors collection
//   - pkg/sanitizer: coercions and string transforms
//   - pkg/field: kind builders, Optional wrapper, Schema
//   - pkg/binder: request extraction, binding and error responses
//   - pkg/openapi: Swagger 2.0 documents built from schemas
//   - pkg/pagination: shared page options and page metadata schemas
//   - pkg/docserver: HTTP server publishing the document
//   - pkg/config, pkg/logger: environment settings and slog setup
//
// The cmd/schemadoc command renders or serves the document for the bundled
// catalog and validates ad hoc payloads.
package fieldkit
