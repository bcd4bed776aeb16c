package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizeEmail trims and lowercases an address. The local part is kept as
// typed otherwise; providers differ on dot and plus semantics.
func NormalizeEmail(email string) string {
	return TrimToLower(email)
}

// NormalizePhone returns a transform that reformats phone numbers to E.164
// (+14155552671). Region is the default region for national numbers and may
// be empty. Unparseable input is returned unchanged so validation can report it.
func NormalizePhone(region string) func(string) string {
	return func(phone string) string {
		trimmed := strings.TrimSpace(phone)
		if trimmed == "" {
			return phone
		}

		num, err := phonenumbers.Parse(trimmed, region)
		if err != nil {
			return phone
		}
		return phonenumbers.Format(num, phonenumbers.E164)
	}
}
