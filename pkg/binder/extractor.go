package binder

import (
	"net/http"
	"strings"
)

// Extractor reads request data into a presence map: a key exists only when
// the client sent it. Values are strings, json.Number, bool, nil, []any or
// map[string]any.
type Extractor func(r *http.Request) (map[string]any, error)

// Merge combines extractors. Later extractors override keys of earlier ones.
func Merge(extractors ...Extractor) Extractor {
	return func(r *http.Request) (map[string]any, error) {
		out := make(map[string]any)
		for _, extract := range extractors {
			values, err := extract(r)
			if err != nil {
				return nil, err
			}
			for k, v := range values {
				out[k] = v
			}
		}
		return out, nil
	}
}

// fromValues turns url.Values style data into a presence map. A single value
// stays a string; repeated keys become a sequence.
func fromValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
			continue
		case 1:
			out[key] = vs[0]
		default:
			items := make([]any, len(vs))
			for i, v := range vs {
				items[i] = v
			}
			out[key] = items
		}
	}
	return out
}

// mediaType strips parameters from a Content-Type header value.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		return strings.TrimSpace(contentType[:idx])
	}
	return strings.TrimSpace(contentType)
}
