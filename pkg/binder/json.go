package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates an extractor for JSON object bodies. Numbers are kept as
// json.Number so that field coercion sees the literal the client sent.
// A key holding null is present with a nil value, which fields treat as absent.
func JSON() Extractor {
	return func(r *http.Request) (map[string]any, error) {
		if err := r.Context().Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return nil, fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(contentType); mt != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()

		var out map[string]any
		if err := decoder.Decode(&out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if out == nil {
			return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return out, nil
	}
}
