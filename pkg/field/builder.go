package field

import (
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// builder assembles a descriptor in plan order. Every builder call produces
// fresh slices, so descriptors never share mutable state.
type builder struct {
	d Descriptor
}

func newBuilder(kind Kind, each bool) *builder {
	b := &builder{d: Descriptor{kind: kind, required: true, each: each}}
	if each {
		b.transform("to_array", sanitizer.ToArray)
	}
	return b
}

func (b *builder) coerce(name, message string, fn func(any) (any, bool)) *builder {
	b.d.coerce = &coercion{name: name, message: message, fn: fn}
	return b
}

func (b *builder) transform(name string, fn func(any) any) *builder {
	b.d.transforms = append(b.d.transforms, transform{name: name, fn: fn})
	return b
}

// validate adds a rule applied per element when the field holds a sequence.
func (b *builder) validate(rules ...validator.Rule) *builder {
	for _, r := range rules {
		b.d.checks = append(b.d.checks, check{rule: r, each: b.d.each})
	}
	return b
}

// validateWhole adds a rule applied to the value as a whole.
func (b *builder) validateWhole(rules ...validator.Rule) *builder {
	for _, r := range rules {
		b.d.checks = append(b.d.checks, check{rule: r})
	}
	return b
}

func (b *builder) metadata(skip bool, m Metadata) *builder {
	if skip {
		return b
	}
	m = m.clone()
	m.IsArray = m.IsArray || b.d.each
	b.d.meta = &m
	return b
}

func (b *builder) build() Descriptor {
	return b.d
}

func checkLengths(kind Kind, min, max *int) {
	if min != nil && *min < 0 {
		misconfigured(kind, "MinLength", "must not be negative")
	}
	if max != nil && *max < 0 {
		misconfigured(kind, "MaxLength", "must not be negative")
	}
	if min != nil && max != nil && *min > *max {
		misconfigured(kind, "MinLength", "must not exceed MaxLength")
	}
}

// lengthRules returns one rule per configured bound.
func lengthRules(min, max *int) []validator.Rule {
	var rules []validator.Rule
	if min != nil {
		rules = append(rules, validator.MinLength(*min))
	}
	if max != nil {
		rules = append(rules, validator.MaxLength(*max))
	}
	return rules
}
