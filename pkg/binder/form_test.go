package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/items?page=2&tag=a&tag=b&q=", nil)
	values, err := binder.Query()(req)
	require.NoError(t, err)

	assert.Equal(t, "2", values["page"])
	assert.Equal(t, []any{"a", "b"}, values["tag"])
	assert.Equal(t, "", values["q"])
	assert.NotContains(t, values, "take")

	bad := httptest.NewRequest(http.MethodGet, "/items", nil)
	bad.URL.RawQuery = "a=%zz"
	_, err = binder.Query()(bad)
	assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"name": {"John"}, "roles": {"admin", "user"}}
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		values, err := binder.Form()(req)
		require.NoError(t, err)
		assert.Equal(t, "John", values["name"])
		assert.Equal(t, []any{"admin", "user"}, values["roles"])
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("title", "Doc"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		values, err := binder.Form()(req)
		require.NoError(t, err)
		assert.Equal(t, "Doc", values["title"])
	})

	t.Run("missing boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data")

		_, err := binder.Form()(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Form()(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("a=b"))

		_, err := binder.Form()(req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	var got map[string]any
	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		values, err := binder.Path(chi.URLParam, "id", "slug")(r)
		require.NoError(t, err)
		got = values
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/42", nil))

	assert.Equal(t, map[string]any{"id": "42"}, got)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	req := jsonRequest(`{"page":"9","name":"x"}`)
	req.URL.RawQuery = "page=2&q=go"

	values, err := binder.Merge(binder.Query(), binder.JSON())(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"page": "9", "q": "go", "name": "x"}, values)

	bad := jsonRequest(`nope`)
	_, err = binder.Merge(binder.Query(), binder.JSON())(bad)
	assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
}
