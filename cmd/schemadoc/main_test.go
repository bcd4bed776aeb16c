package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/openapi"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func testSettings() config.Settings {
	return config.Settings{SupportedLanguages: []string{"en", "ru"}, PhoneRegion: "us", ValidationMode: "all"}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	cat := newCatalog(testSettings())

	out, err := cat.createProduct.Validate(map[string]any{
		"sku": "hp-100",
		"titles": []any{
			map[string]any{"languageCode": "EN", "text": "Headphones"},
			map[string]any{"languageCode": "ru", "text": "Naushniki"},
		},
		"price":  "1999",
		"status": "draft",
		"tags":   "Audio",
	})
	require.NoError(t, err)
	assert.Equal(t, "HP-100", out["sku"])
	assert.Equal(t, 1999.0, out["price"])
	assert.Equal(t, []any{"audio"}, out["tags"])

	_, err = cat.createProduct.Validate(map[string]any{
		"sku":    "hp-100",
		"titles": []any{map[string]any{"languageCode": "en", "text": "Headphones"}},
		"price":  -5,
		"status": "sold",
	})
	errs := validator.ExtractValidationErrors(err)
	assert.True(t, errs.HasRule("titles", "array_min_size"))
	assert.True(t, errs.HasRule("price", "positive"))
	assert.True(t, errs.HasRule("status", "enum"))

	out, err = cat.contact.Validate(map[string]any{
		"email":    "Me@Example.com",
		"phone":    "(201) 555-0123",
		"password": "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "+12015550123", out["phone"])

	_, ok := cat.lookup("TranslationDto")
	assert.True(t, ok)
	_, ok = cat.lookup("Nope")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	t.Parallel()

	cat := newCatalog(testSettings())
	doc := openapi.NewDocument(openapi.Info{Title: "Test", Version: "1"}, cat.all()...)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, doc, "json"))
	assert.Contains(t, buf.String(), `"CreateProductDto"`)
	assert.Contains(t, buf.String(), `"TranslationDto"`)
	assert.Contains(t, buf.String(), `"PageOptionsDto"`)

	buf.Reset()
	require.NoError(t, render(&buf, doc, "yaml"))
	assert.Contains(t, buf.String(), "ContactDto:")

	assert.Error(t, render(&buf, doc, "xml"))
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("renders yaml", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "CreateProductDto:")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "", "-f", "xml")
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
	})

	t.Run("check accepts payload", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, `{"email":" Me@Example.com ","password":"Secret123!","extra":1}`, "check", "ContactDto")
		require.NoError(t, err)

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, map[string]any{"email": "me@example.com", "password": "Secret123!"}, body.Data)
	})

	t.Run("check rejects payload", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, `{"email":"nope","password":"short"}`, "check", "ContactDto")
		require.ErrorIs(t, err, errRejected)
		assert.Equal(t, 1, exitCode(err))
		assert.Contains(t, out, `"field": "email"`)
		assert.Contains(t, out, `"field": "password"`)
	})

	t.Run("check unknown schema", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, `{}`, "check", "NopeDto")
		require.ErrorIs(t, err, errUsage)
	})
}

func TestRootCmdInvalidSettings(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("FIELDKIT_LOG_LEVEL", "verbose")

	var err error
	require.NotPanics(t, func() {
		_, err = execute(t, "", "--format", "json")
	})
	require.ErrorIs(t, err, config.ErrInvalidSettings)
	assert.Equal(t, 2, exitCode(err))
}
