package field

import (
	"regexp"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// DefaultPasswordPattern lists the characters a password may contain.
const DefaultPasswordPattern = `^[\d!#$%&*@A-Z^a-z]*$`

// String describes a trimmed, non-empty string field.
// Case conversion runs before the length check, so bounds apply to the
// normalized value.
func String(opts StringOptions) Descriptor {
	checkLengths(KindString, opts.MinLength, opts.MaxLength)
	if opts.ToLowerCase && opts.ToUpperCase {
		misconfigured(KindString, "ToLowerCase", "cannot be combined with ToUpperCase")
	}

	b := newBuilder(KindString, opts.Each).
		transform("trim", sanitizer.Lift(sanitizer.Trim))
	if opts.ToLowerCase {
		b.transform("to_lower_case", sanitizer.Lift(sanitizer.ToLower))
	}
	if opts.ToUpperCase {
		b.transform("to_upper_case", sanitizer.Lift(sanitizer.ToUpper))
	}

	return b.
		validate(validator.NotEmpty(), validator.IsString()).
		validate(lengthRules(opts.MinLength, opts.MaxLength)...).
		metadata(opts.SkipSchema, Metadata{
			Type:        "string",
			Description: opts.Description,
			Example:     opts.Example,
			MinLength:   opts.MinLength,
			MaxLength:   opts.MaxLength,
		}).
		build()
}

// Password is a String restricted to a character pattern.
func Password(opts PasswordOptions) Descriptor {
	checkLengths(KindPassword, opts.MinLength, opts.MaxLength)

	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPasswordPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		misconfigured(KindPassword, "Pattern", err.Error())
	}

	return newBuilder(KindPassword, false).
		transform("trim", sanitizer.Lift(sanitizer.Trim)).
		validate(validator.NotEmpty(), validator.IsString()).
		validate(lengthRules(opts.MinLength, opts.MaxLength)...).
		validate(validator.MatchesPattern(re)).
		metadata(opts.SkipSchema, Metadata{
			Type:        "string",
			Format:      "password",
			Pattern:     pattern,
			Description: opts.Description,
			MinLength:   opts.MinLength,
			MaxLength:   opts.MaxLength,
		}).
		build()
}

// Email describes a trimmed, lowercased email address.
func Email(opts EmailOptions) Descriptor {
	checkLengths(KindEmail, opts.MinLength, opts.MaxLength)

	return newBuilder(KindEmail, opts.Each).
		transform("trim", sanitizer.Lift(sanitizer.Trim)).
		transform("to_lower_case", sanitizer.Lift(sanitizer.ToLower)).
		validate(validator.NotEmpty(), validator.IsString(), validator.IsEmail()).
		validate(lengthRules(opts.MinLength, opts.MaxLength)...).
		metadata(opts.SkipSchema, Metadata{
			Type:        "string",
			Format:      "email",
			Description: opts.Description,
			Example:     opts.Example,
			MinLength:   opts.MinLength,
			MaxLength:   opts.MaxLength,
		}).
		build()
}

// URL describes an absolute URL with scheme and host.
func URL(opts URLOptions) Descriptor {
	checkLengths(KindURL, opts.MinLength, opts.MaxLength)

	return newBuilder(KindURL, opts.Each).
		transform("trim", sanitizer.Lift(sanitizer.Trim)).
		validate(validator.NotEmpty(), validator.IsString(), validator.IsURL()).
		validate(lengthRules(opts.MinLength, opts.MaxLength)...).
		metadata(opts.SkipSchema, Metadata{
			Type:        "string",
			Format:      "uri",
			Description: opts.Description,
			Example:     opts.Example,
			MinLength:   opts.MinLength,
			MaxLength:   opts.MaxLength,
		}).
		build()
}
