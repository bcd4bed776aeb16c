package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinLength validates that a string has at least min characters.
// Length is counted in runes, not bytes.
func MinLength(min int) Rule {
	return Rule{
		Name: "min_length",
		Check: func(value any) bool {
			s, ok := value.(string)
			return ok && utf8.RuneCountInString(s) >= min
		},
		Message:        fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"min": min,
		},
	}
}

func MaxLength(max int) Rule {
	return Rule{
		Name: "max_length",
		Check: func(value any) bool {
			s, ok := value.(string)
			return ok && utf8.RuneCountInString(s) <= max
		},
		Message:        fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey: "validation.max_length",
		TranslationValues: map[string]any{
			"max": max,
		},
	}
}

// LengthBetween combines optional lower and upper bounds. A nil bound is not checked.
func LengthBetween(min, max *int) Rule {
	msg := "has an invalid length"
	values := map[string]any{}
	switch {
	case min != nil && max != nil:
		msg = fmt.Sprintf("must be between %d and %d characters long", *min, *max)
		values["min"], values["max"] = *min, *max
	case min != nil:
		msg = fmt.Sprintf("must be at least %d characters long", *min)
		values["min"] = *min
	case max != nil:
		msg = fmt.Sprintf("must be at most %d characters long", *max)
		values["max"] = *max
	}

	return Rule{
		Name: "length",
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			if min != nil && n < *min {
				return false
			}
			if max != nil && n > *max {
				return false
			}
			return true
		},
		Message:           msg,
		TranslationKey:    "validation.length",
		TranslationValues: values,
	}
}
