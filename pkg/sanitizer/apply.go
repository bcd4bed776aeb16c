package sanitizer

// Apply creates functional composition pipeline for sanitization transformations.
// Useful for building complex sanitization chains while maintaining type safety.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates reusable sanitization pipelines that can be stored and reused.
// Preferred over repeated Apply calls when the same transformation chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Lift adapts a string transform to raw values. Strings are transformed,
// string elements of a sequence are transformed into a new []any, and every
// other value is returned unchanged.
func Lift(fn func(string) string) func(any) any {
	return func(value any) any {
		switch v := value.(type) {
		case string:
			return fn(v)
		case []any:
			out := make([]any, len(v))
			for i, item := range v {
				if s, ok := item.(string); ok {
					out[i] = fn(s)
					continue
				}
				out[i] = item
			}
			return out
		case []string:
			out := make([]any, len(v))
			for i, s := range v {
				out[i] = fn(s)
			}
			return out
		default:
			return value
		}
	}
}

// Each applies fn to every element of a []any, or to the value itself when it
// is not a sequence.
func Each(fn func(any) any) func(any) any {
	return func(value any) any {
		items, ok := value.([]any)
		if !ok {
			return fn(value)
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fn(item)
		}
		return out
	}
}
