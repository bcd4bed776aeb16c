package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ValidationError represents a single failed rule on a single field or element.
type ValidationError struct {
	Field             string         `json:"field"`
	Rule              string         `json:"rule"`
	Message           string         `json:"message"`
	Value             any            `json:"value,omitempty"`
	Index             *int           `json:"index,omitempty"`
	Coercion          bool           `json:"coercion,omitempty"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets callers test for ErrValidationFailed without unpacking the slice.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// HasRule reports whether any error for field was produced by the named rule.
func (ve ValidationErrors) HasRule(field, rule string) bool {
	for _, err := range ve {
		if err.Field == field && err.Rule == rule {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a named, pure check over a raw field value.
// Check must be total: values of an unexpected type fail instead of panicking.
type Rule struct {
	Name              string
	Check             func(value any) bool
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Validate runs the rule against value. When each is true and value is a
// sequence, every element is checked and the first failing element is
// reported with its index. A non-sequence value is checked as is.
func (r Rule) Validate(field string, value any, each bool) *ValidationError {
	if each {
		if items, ok := Elements(value); ok {
			for i, item := range items {
				if !r.passes(item) {
					return r.failure(field, item, &i)
				}
			}
			return nil
		}
	}

	if !r.passes(value) {
		return r.failure(field, value, nil)
	}
	return nil
}

// passes shields callers from a panicking Check.
func (r Rule) passes(value any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return r.Check(value)
}

func (r Rule) failure(field string, value any, index *int) *ValidationError {
	name := field
	if index != nil {
		name = fmt.Sprintf("%s[%d]", field, *index)
	}

	values := make(map[string]any, len(r.TranslationValues)+1)
	for k, v := range r.TranslationValues {
		values[k] = v
	}
	values["field"] = name

	return &ValidationError{
		Field:             name,
		Rule:              r.Name,
		Message:           r.Message,
		Value:             value,
		Index:             index,
		TranslationKey:    r.TranslationKey,
		TranslationValues: values,
	}
}

// Apply executes rules against a single field value and returns any validation errors.
func Apply(field string, value any, rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if err := rule.Validate(field, value, false); err != nil {
			errs = append(errs, *err)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Elements returns the items of a slice or array value.
// Typed slices such as []string are converted to []any.
func Elements(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []any:
		return v, true
	case string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
