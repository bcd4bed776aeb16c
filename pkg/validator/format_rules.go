package validator

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// IsEmail validates that a string is a plain email address.
// Display names ("Bob <bob@example.com>") are rejected.
func IsEmail() Rule {
	return Rule{
		Name: "email",
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			// Parse with Go's mail parser first
			addr, err := mail.ParseAddress(s)
			if err != nil || addr.Address != s {
				return false
			}

			localPart, domain, found := strings.Cut(addr.Address, "@")
			if !found || localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Message:        "must be a valid email address",
		TranslationKey: "validation.email",
	}
}

// IsURL validates an absolute URL with a scheme and a host.
func IsURL() Rule {
	return Rule{
		Name: "url",
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			u, err := url.ParseRequestURI(s)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Message:        "must be a valid URL",
		TranslationKey: "validation.url",
	}
}

// IsPhone validates a phone number with libphonenumber metadata.
// Without a region only numbers in international form (+...) can pass.
func IsPhone(region string) Rule {
	return Rule{
		Name: "phone",
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			num, err := phonenumbers.Parse(s, region)
			if err != nil {
				return false
			}
			return phonenumbers.IsValidNumber(num)
		},
		Message:        "must be a valid phone number",
		TranslationKey: "validation.phone",
		TranslationValues: map[string]any{
			"region": region,
		},
	}
}
