package field

import (
	"reflect"
	"sync"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Enum describes a field restricted to a set of values. The accessor is not
// called here; it runs on first validation or first metadata read and is
// memoized, so the set may be declared after the field.
func Enum[T comparable](values func() []T, opts EnumOptions) Descriptor {
	if values == nil {
		misconfigured(KindEnum, "values", "accessor must not be nil")
	}

	resolve := sync.OnceValue(values)
	asAny := sync.OnceValue(func() []any {
		items := resolve()
		out := make([]any, len(items))
		for i, v := range items {
			out[i] = v
		}
		return out
	})

	m := Metadata{
		Type:        enumType[T](),
		EnumName:    opts.Name,
		Description: opts.Description,
		Example:     opts.Example,
		enum:        asAny,
	}

	return newBuilder(KindEnum, opts.Each).
		validate(validator.IsOneOf(resolve)).
		metadata(opts.SkipSchema, m).
		build()
}

// enumType derives the published element type from T without resolving values.
func enumType[T any]() string {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return "string"
	}
}
