package field

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Phone normalizes phone numbers to E.164 and validates them.
func Phone(opts PhoneOptions) Descriptor {
	if opts.Region != "" && phonenumbers.GetCountryCodeForRegion(opts.Region) == 0 {
		misconfigured(KindPhone, "Region", "unknown region "+opts.Region)
	}

	return newBuilder(KindPhone, opts.Each).
		transform("normalize_phone", sanitizer.Lift(sanitizer.NormalizePhone(opts.Region))).
		validate(validator.IsString(), validator.IsPhone(opts.Region)).
		metadata(opts.SkipSchema, Metadata{
			Type:        "string",
			Format:      "phone",
			Description: opts.Description,
			Example:     opts.Example,
		}).
		build()
}
