package validator

import (
	"encoding/json"
	"math"
	"reflect"
	"time"
)

// Required fails for a field that was not supplied at all.
// It is reported by the schema engine instead of running the field's rules.
func Required() Rule {
	return Rule{
		Name:           "required",
		Check:          func(value any) bool { return value != nil },
		Message:        "field is required",
		TranslationKey: "validation.required",
	}
}

// NotEmpty rejects nil and the empty string. Whitespace is not trimmed here;
// field builders trim before validating.
func NotEmpty() Rule {
	return Rule{
		Name: "not_empty",
		Check: func(value any) bool {
			switch v := value.(type) {
			case nil:
				return false
			case string:
				return v != ""
			default:
				return true
			}
		},
		Message:        "must not be empty",
		TranslationKey: "validation.not_empty",
	}
}

func IsString() Rule {
	return Rule{
		Name: "string",
		Check: func(value any) bool {
			_, ok := value.(string)
			return ok
		},
		Message:        "must be a string",
		TranslationKey: "validation.string",
	}
}

// IsNumber accepts any finite Go numeric value or json.Number.
func IsNumber() Rule {
	return Rule{
		Name: "number",
		Check: func(value any) bool {
			_, ok := AsNumber(value)
			return ok
		},
		Message:        "must be a number",
		TranslationKey: "validation.number",
	}
}

func IsInteger() Rule {
	return Rule{
		Name: "integer",
		Check: func(value any) bool {
			n, ok := AsNumber(value)
			return ok && n == math.Trunc(n)
		},
		Message:        "must be an integer number",
		TranslationKey: "validation.integer",
	}
}

func IsBoolean() Rule {
	return Rule{
		Name: "boolean",
		Check: func(value any) bool {
			_, ok := value.(bool)
			return ok
		},
		Message:        "must be a boolean value",
		TranslationKey: "validation.boolean",
	}
}

// IsDate accepts a non-zero time.Time.
func IsDate() Rule {
	return Rule{
		Name: "date",
		Check: func(value any) bool {
			switch v := value.(type) {
			case time.Time:
				return !v.IsZero()
			case *time.Time:
				return v != nil && !v.IsZero()
			default:
				return false
			}
		},
		Message:        "must be a valid date",
		TranslationKey: "validation.date",
	}
}

func IsArray() Rule {
	return Rule{
		Name: "array",
		Check: func(value any) bool {
			_, ok := Elements(value)
			return ok
		},
		Message:        "must be an array",
		TranslationKey: "validation.array",
	}
}

// AsNumber converts numeric kinds and json.Number to float64. Strings,
// NaN and infinities are not numbers.
func AsNumber(value any) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case nil, bool, string:
		return 0, false
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			n = rv.Float()
		default:
			return 0, false
		}
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
