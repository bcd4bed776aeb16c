package sanitizer

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// dateLayouts are tried in order when coercing strings to dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ToArray wraps a scalar into a one-element sequence. Sequences are returned
// as []any; typed slices are converted element by element.
func ToArray(value any) any {
	switch v := value.(type) {
	case nil:
		return value
	case []any:
		return v
	case string, []byte:
		return []any{v}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ToBoolean maps "true"/"false" and the numbers 1/0 to booleans.
// Any other value passes through unchanged.
func ToBoolean(value any) any {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true":
			return true
		case "false":
			return false
		}
		return value
	}

	if n, ok := validator.AsNumber(value); ok {
		switch n {
		case 1:
			return true
		case 0:
			return false
		}
	}
	return value
}

// ToNumber coerces numeric kinds, json.Number and numeric strings to float64.
// Empty strings, booleans, NaN and infinities are not numbers.
func ToNumber(value any) (any, bool) {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return value, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return value, false
		}
		return n, true
	}

	if n, ok := validator.AsNumber(value); ok {
		return n, true
	}
	return value, false
}

// ToDate coerces RFC 3339 strings, date-only strings and Unix timestamps in
// milliseconds to time.Time.
func ToDate(value any) (any, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return value, false
		}
		return *v, !v.IsZero()
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return value, false
	}

	if ms, ok := validator.AsNumber(value); ok {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return value, false
}
