package validator

import "fmt"

func ArrayNotEmpty() Rule {
	return Rule{
		Name: "array_not_empty",
		Check: func(value any) bool {
			items, ok := Elements(value)
			return ok && len(items) > 0
		},
		Message:        "must not be an empty array",
		TranslationKey: "validation.required",
	}
}

func ArrayMinSize(min int) Rule {
	return Rule{
		Name: "array_min_size",
		Check: func(value any) bool {
			items, ok := Elements(value)
			return ok && len(items) >= min
		},
		Message:        fmt.Sprintf("must contain at least %d elements", min),
		TranslationKey: "validation.min_items",
		TranslationValues: map[string]any{
			"min": min,
		},
	}
}

func ArrayMaxSize(max int) Rule {
	return Rule{
		Name: "array_max_size",
		Check: func(value any) bool {
			items, ok := Elements(value)
			return ok && len(items) <= max
		},
		Message:        fmt.Sprintf("must contain no more than %d elements", max),
		TranslationKey: "validation.max_items",
		TranslationValues: map[string]any{
			"max": max,
		},
	}
}

func ArrayLength(exact int) Rule {
	return Rule{
		Name: "array_length",
		Check: func(value any) bool {
			items, ok := Elements(value)
			return ok && len(items) == exact
		},
		Message:        fmt.Sprintf("must contain exactly %d elements", exact),
		TranslationKey: "validation.exact_items",
		TranslationValues: map[string]any{
			"count": exact,
		},
	}
}
