package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// IsUUID validates the canonical 36-character form of an RFC 4122 UUID of
// the given version. Version 0 accepts any version.
func IsUUID(version int) Rule {
	msg := "must be a UUID"
	if version > 0 {
		msg = fmt.Sprintf("must be a UUID version %d", version)
	}

	return Rule{
		Name: "uuid",
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing
			if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}

			parsed, err := uuid.Parse(s)
			if err != nil || parsed.Variant() != uuid.RFC4122 {
				return false
			}
			return version == 0 || parsed.Version() == uuid.Version(version)
		},
		Message:        msg,
		TranslationKey: "validation.uuid_version",
		TranslationValues: map[string]any{
			"version": version,
		},
	}
}

func IsUUIDv4() Rule {
	return IsUUID(4)
}
