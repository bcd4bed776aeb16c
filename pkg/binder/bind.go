package binder

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Option configures Extract and Bind.
type Option func(*options)

type options struct {
	extract Extractor
	mode    field.Mode
	log     *slog.Logger
}

// WithExtractor replaces the default JSON extractor.
func WithExtractor(e Extractor) Option {
	return func(o *options) {
		if e != nil {
			o.extract = e
		}
	}
}

// WithMode selects how many validation failures are collected.
func WithMode(m field.Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithLogger logs extraction and validation failures at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Extract reads the request with the configured extractor and validates the
// presence map against schema. The result holds only declared fields.
// Validation failures are returned as validator.ValidationErrors.
func Extract(r *http.Request, schema *field.Schema, opts ...Option) (map[string]any, error) {
	o := options{extract: JSON(), mode: field.ModeAll}
	for _, opt := range opts {
		opt(&o)
	}

	input, err := o.extract(r)
	if err != nil {
		if o.log != nil {
			o.log.DebugContext(r.Context(), "request extraction failed",
				logger.Schema(schema.Name()),
				logger.Error(err),
			)
		}
		return nil, err
	}

	out, err := schema.ValidateMode(input, o.mode)
	if err != nil {
		if o.log != nil {
			o.log.DebugContext(r.Context(), "request validation failed",
				logger.Schema(schema.Name()),
				logger.Fields(validator.ExtractValidationErrors(err).Fields()),
			)
		}
		return nil, err
	}
	return out, nil
}

// Bind extracts and validates the request, then decodes the validated output
// into dst, which must be a non-nil pointer. Decoding goes through JSON tags.
func Bind(r *http.Request, schema *field.Schema, dst any, opts ...Option) error {
	out, err := Extract(r, schema, opts...)
	if err != nil {
		return err
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	return nil
}
