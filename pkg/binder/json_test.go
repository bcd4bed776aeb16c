package binder_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/binder"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("presence map", func(t *testing.T) {
		t.Parallel()

		values, err := binder.JSON()(jsonRequest(`{"name":"John","age":30,"bio":null,"tags":["a","b"]}`))
		require.NoError(t, err)

		assert.Equal(t, "John", values["name"])
		assert.Equal(t, json.Number("30"), values["age"])
		assert.Equal(t, []any{"a", "b"}, values["tags"])

		bio, present := values["bio"]
		assert.True(t, present)
		assert.Nil(t, bio)

		_, present = values["email"]
		assert.False(t, present)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"name":"Jane"}`)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		values, err := binder.JSON()(req)
		require.NoError(t, err)
		assert.Equal(t, "Jane", values["name"])
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"name":"Test"}`)
		req.Header.Del("Content-Type")

		_, err := binder.JSON()(req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"name":"Test"}`)
		req.Header.Set("Content-Type", "text/plain")

		_, err := binder.JSON()(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"malformed", `{"name":`},
		{"array body", `["a"]`},
		{"null body", `null`},
		{"trailing data", `{"a":1}{"b":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := binder.JSON()(jsonRequest(tt.body))
			assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		})
	}

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		big := `{"data":"` + strings.Repeat("x", binder.DefaultMaxJSONSize) + `"}`
		_, err := binder.JSON()(jsonRequest(big))
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}
