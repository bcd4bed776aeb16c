package validator

import (
	"fmt"
	"reflect"
	"sync"
)

// IsOneOf validates membership in a lazily resolved set of values.
// The accessor runs on the first check, not when the rule is built, so the set
// may be declared after the field that uses it. The result is memoized.
func IsOneOf[T comparable](values func() []T) Rule {
	resolve := sync.OnceValue(values)

	return Rule{
		Name: "enum",
		Check: func(value any) bool {
			for _, allowed := range resolve() {
				if sameValue(value, allowed) {
					return true
				}
			}
			return false
		},
		Message:        "must be one of the allowed values",
		TranslationKey: "validation.in_list",
	}
}

// InList is the eager form of IsOneOf.
func InList[T comparable](allowed ...T) Rule {
	r := IsOneOf(func() []T { return allowed })
	r.Message = fmt.Sprintf("must be one of: %v", allowed)
	r.TranslationValues = map[string]any{"allowed_values": allowed}
	return r
}

// sameValue compares a raw input with an allowed value. Numbers compare by
// value across Go numeric types and json.Number, everything else strictly.
func sameValue[T comparable](value any, allowed T) bool {
	if v, ok := value.(T); ok {
		return v == allowed
	}

	if a, ok := AsNumber(allowed); ok {
		if n, ok := AsNumber(value); ok {
			return a == n
		}
		return false
	}

	// Named string types such as `type Role string`.
	rv, ra := reflect.ValueOf(value), reflect.ValueOf(allowed)
	if rv.Kind() == reflect.String && ra.Kind() == reflect.String {
		return rv.String() == ra.String()
	}
	return false
}
