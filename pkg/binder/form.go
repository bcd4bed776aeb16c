package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates an extractor for application/x-www-form-urlencoded and
// multipart/form-data bodies. Uploaded files are not part of the presence map.
func Form() Extractor {
	return func(r *http.Request) (map[string]any, error) {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return nil, fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mt := mediaType(contentType)
		switch {
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return fromValues(r.PostForm), nil

		case strings.HasPrefix(mt, "multipart/form-data"):
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
			}
			if params["boundary"] == "" {
				return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			if r.MultipartForm == nil {
				return map[string]any{}, nil
			}
			return fromValues(r.MultipartForm.Value), nil

		default:
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}
	}
}

// Query creates an extractor for URL query parameters.
func Query() Extractor {
	return func(r *http.Request) (map[string]any, error) {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		return fromValues(values), nil
	}
}

// Path creates an extractor for route parameters. extract is the router's
// lookup, for example chi.URLParam. Empty parameters are absent.
func Path(extract func(r *http.Request, name string) string, names ...string) Extractor {
	return func(r *http.Request) (map[string]any, error) {
		out := make(map[string]any, len(names))
		for _, name := range names {
			if v := extract(r, name); v != "" {
				out[name] = v
			}
		}
		return out, nil
	}
}
