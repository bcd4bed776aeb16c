package field

import (
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Number describes a numeric field. Input is coerced to float64 first, so
// numeric strings from query parameters are accepted.
func Number(opts NumberOptions) Descriptor {
	if opts.Minimum != nil && opts.Maximum != nil && *opts.Minimum > *opts.Maximum {
		misconfigured(KindNumber, "Minimum", "must not exceed Maximum")
	}
	if opts.Positive && opts.Minimum != nil && *opts.Minimum < 0 {
		misconfigured(KindNumber, "Positive", "contradicts a negative Minimum")
	}
	if opts.Positive && opts.Maximum != nil && *opts.Maximum <= 0 {
		misconfigured(KindNumber, "Positive", "leaves no valid value below Maximum")
	}

	b := newBuilder(KindNumber, opts.Each).
		coerce("number", "must be a number conforming to the specified constraints", sanitizer.ToNumber)

	if opts.Int {
		b.validate(validator.IsInteger())
	} else {
		b.validate(validator.IsNumber())
	}
	if opts.Minimum != nil {
		b.validate(validator.Min(*opts.Minimum))
	}
	if opts.Maximum != nil {
		b.validate(validator.Max(*opts.Maximum))
	}
	if opts.Positive {
		b.validate(validator.IsPositive())
	}

	example := opts.Example
	if example == nil {
		example = 1.2
		if opts.Int {
			example = 1
		}
	}

	return b.metadata(opts.SkipSchema, Metadata{
		Type:        "number",
		Description: opts.Description,
		Example:     example,
		Minimum:     opts.Minimum,
		Maximum:     opts.Maximum,
	}).build()
}

// Boolean accepts booleans and the literals "true"/"false", 1/0.
func Boolean(opts BooleanOptions) Descriptor {
	return newBuilder(KindBoolean, opts.Each).
		transform("to_boolean", sanitizer.Each(sanitizer.ToBoolean)).
		validate(validator.IsBoolean()).
		metadata(opts.SkipSchema, Metadata{
			Type:        "boolean",
			Description: opts.Description,
			Example:     opts.Example,
		}).
		build()
}

// Date coerces RFC 3339 strings, dates and millisecond timestamps to time.Time.
func Date(opts DateOptions) Descriptor {
	return newBuilder(KindDate, opts.Each).
		coerce("date", "must be a Date instance", sanitizer.ToDate).
		validate(validator.IsDate()).
		metadata(opts.SkipSchema, Metadata{
			Type:        "string",
			Format:      "date-time",
			Description: opts.Description,
			Example:     opts.Example,
		}).
		build()
}
