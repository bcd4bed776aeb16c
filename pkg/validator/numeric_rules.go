package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
func Min(min float64) Rule {
	return Rule{
		Name: "min",
		Check: func(value any) bool {
			n, ok := AsNumber(value)
			return ok && n >= min
		},
		Message:        fmt.Sprintf("must not be less than %v", min),
		TranslationKey: "validation.min",
		TranslationValues: map[string]any{
			"min": min,
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max(max float64) Rule {
	return Rule{
		Name: "max",
		Check: func(value any) bool {
			n, ok := AsNumber(value)
			return ok && n <= max
		},
		Message:        fmt.Sprintf("must not be greater than %v", max),
		TranslationKey: "validation.max",
		TranslationValues: map[string]any{
			"max": max,
		},
	}
}

// NumberBetween applies optional inclusive bounds. A nil bound is not checked.
func NumberBetween(min, max *float64) Rule {
	values := map[string]any{}
	if min != nil {
		values["min"] = *min
	}
	if max != nil {
		values["max"] = *max
	}

	return Rule{
		Name: "range",
		Check: func(value any) bool {
			n, ok := AsNumber(value)
			if !ok {
				return false
			}
			if min != nil && n < *min {
				return false
			}
			if max != nil && n > *max {
				return false
			}
			return true
		},
		Message:           "must be within the allowed range",
		TranslationKey:    "validation.range",
		TranslationValues: values,
	}
}

func IsPositive() Rule {
	return Rule{
		Name: "positive",
		Check: func(value any) bool {
			n, ok := AsNumber(value)
			return ok && n > 0
		},
		Message:        "must be a positive number",
		TranslationKey: "validation.positive",
	}
}
