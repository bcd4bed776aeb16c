package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase using Unicode full case mapping.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper converts a string to uppercase using Unicode full case mapping.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return ToLower(Trim(s))
}
