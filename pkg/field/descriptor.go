package field

import (
	"fmt"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Stage is a phase of a descriptor's execution plan.
type Stage string

const (
	StageCoerce    Stage = "coerce"
	StageTransform Stage = "transform"
	StageValidate  Stage = "validate"
)

// Step is one entry of the execution plan.
type Step struct {
	Stage Stage
	Name  string
	Each  bool
}

type coercion struct {
	name    string
	message string
	fn      func(any) (any, bool)
}

type transform struct {
	name string
	fn   func(any) any
}

type check struct {
	rule validator.Rule
	each bool
}

// Descriptor is the immutable composition of coercion, transforms,
// validations and metadata for one field. Build it with one of the kind
// builders; the zero value accepts anything.
type Descriptor struct {
	kind       Kind
	required   bool
	each       bool
	coerce     *coercion
	transforms []transform
	checks     []check
	nested     func() *Schema
	meta       *Metadata
}

func (d Descriptor) Kind() Kind { return d.kind }

// Required reports whether an absent value is a failure.
func (d Descriptor) Required() bool { return d.required }

// IsArray reports whether the field holds a sequence.
func (d Descriptor) IsArray() bool { return d.each || d.nested != nil }

// Plan lists the execution steps in the order they run.
func (d Descriptor) Plan() []Step {
	var steps []Step
	if d.coerce != nil {
		steps = append(steps, Step{Stage: StageCoerce, Name: d.coerce.name, Each: d.each})
	}
	for _, t := range d.transforms {
		steps = append(steps, Step{Stage: StageTransform, Name: t.name})
	}
	for _, c := range d.checks {
		steps = append(steps, Step{Stage: StageValidate, Name: c.rule.Name, Each: c.each})
	}
	if d.nested != nil {
		steps = append(steps, Step{Stage: StageValidate, Name: "nested", Each: true})
	}
	return steps
}

// Metadata returns the published schema fragment. The second result is false
// when the builder was told to skip schema emission.
func (d Descriptor) Metadata() (Metadata, bool) {
	if d.meta == nil {
		return Metadata{}, false
	}
	m := d.meta.clone()
	m.Required = d.required
	return m, true
}

// Absent reports whether a value counts as not supplied: either the presence
// check failed or the value is null.
func Absent(value any, present bool) bool {
	return !present || value == nil
}

// Process runs the plan against a raw value. field names the value in
// failures. An absent value skips every step: it is valid for optional
// descriptors and produces a single "required" failure otherwise.
// The returned value is the coerced and transformed input.
func (d Descriptor) Process(field string, value any, present bool, mode Mode) (any, validator.ValidationErrors) {
	if Absent(value, present) {
		if !d.required {
			return nil, nil
		}
		err := validator.Required().Validate(field, nil, false)
		return nil, validator.ValidationErrors{*err}
	}

	value, failure := d.coerceValue(field, value)
	if failure != nil {
		return value, validator.ValidationErrors{*failure}
	}

	for _, t := range d.transforms {
		value = t.fn(value)
	}

	var errs validator.ValidationErrors
	for _, c := range d.checks {
		if err := c.rule.Validate(field, value, c.each); err != nil {
			errs = append(errs, *err)
			if mode == ModeFirst {
				return value, errs
			}
		}
	}

	if d.nested != nil && errs.IsEmpty() {
		return d.processNested(field, value, mode)
	}

	return value, errs
}

// Transform applies coercion and transforms without validating. Values that
// cannot be coerced are kept as they are.
func (d Descriptor) Transform(value any) any {
	if value == nil {
		return nil
	}

	if coerced, failure := d.coerceValue("", value); failure == nil {
		value = coerced
	}
	for _, t := range d.transforms {
		value = t.fn(value)
	}

	if d.nested == nil {
		return value
	}

	items, ok := validator.Elements(value)
	if !ok {
		return value
	}
	schema := d.nested()
	out := make([]any, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]any); ok && schema != nil {
			out[i] = schema.Serialize(m)
			continue
		}
		out[i] = item
	}
	return out
}

func (d Descriptor) coerceValue(field string, value any) (any, *validator.ValidationError) {
	if d.coerce == nil {
		return value, nil
	}

	if d.each {
		if items, ok := validator.Elements(value); ok {
			out := make([]any, len(items))
			for i, item := range items {
				coerced, ok := d.coerce.fn(item)
				if !ok {
					return value, d.coercionFailure(fmt.Sprintf("%s[%d]", field, i), item, &i)
				}
				out[i] = coerced
			}
			return out, nil
		}
	}

	coerced, ok := d.coerce.fn(value)
	if !ok {
		return value, d.coercionFailure(field, value, nil)
	}
	return coerced, nil
}

func (d Descriptor) coercionFailure(field string, value any, index *int) *validator.ValidationError {
	return &validator.ValidationError{
		Field:          field,
		Rule:           d.coerce.name,
		Message:        d.coerce.message,
		Value:          value,
		Index:          index,
		Coercion:       true,
		TranslationKey: "validation.coerce_" + d.coerce.name,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

func (d Descriptor) processNested(field string, value any, mode Mode) (any, validator.ValidationErrors) {
	schema := d.nested()
	if schema == nil {
		return value, nil
	}

	items, _ := validator.Elements(value)
	out := make([]any, len(items))
	var errs validator.ValidationErrors

	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", field, i)
		m, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:          path,
				Rule:           "nested",
				Message:        "must be an object",
				Value:          item,
				Index:          &i,
				TranslationKey: "validation.nested",
				TranslationValues: map[string]any{
					"field": path,
				},
			})
			if mode == ModeFirst {
				return value, errs
			}
			out[i] = item
			continue
		}

		result, nestedErrs := schema.validate(m, mode, path+".")
		out[i] = result
		errs = append(errs, nestedErrs...)
		if mode == ModeFirst && !nestedErrs.IsEmpty() {
			return value, errs
		}
	}

	return out, errs
}
