package binder_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/binder"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unsupported media type", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"missing content type", binder.ErrMissingContentType, http.StatusBadRequest},
		{"bad json", binder.ErrFailedToParseJSON, http.StatusBadRequest},
		{"unknown", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, binder.ClassifyError(tt.err).StatusCode)
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		var dst signupRequest
		if err := binder.Bind(r, signupSchema(), &dst); err != nil {
			binder.WriteError(w, r, nil, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequestTo("/signup", `{"name":"A"}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success    *bool  `json:"success"`
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
		RequestID  string `json:"requestId"`
		Errors     []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Success)
	assert.False(t, *body.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, body.StatusCode)
	assert.NotEmpty(t, body.RequestID)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "min_length", body.Errors[0].Rule)
	assert.Equal(t, "email", body.Errors[1].Field)
	assert.Equal(t, "required", body.Errors[1].Rule)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequestTo("/signup", `{"name":"Ann","email":"ann@example.com"}`))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func jsonRequestTo(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
