package field

import "github.com/dmitrymomot/fieldkit/pkg/validator"

// UUID describes a version 4 UUID in canonical form. With Each the field is a
// non-empty array of UUIDs.
func UUID(opts UUIDOptions) Descriptor {
	b := newBuilder(KindUUID, opts.Each).
		validate(validator.IsUUIDv4())
	if opts.Each {
		b.validateWhole(validator.ArrayNotEmpty())
	}

	return b.metadata(opts.SkipSchema, Metadata{
		Type:        "string",
		Format:      "uuid",
		Description: opts.Description,
		Example:     opts.Example,
	}).build()
}
