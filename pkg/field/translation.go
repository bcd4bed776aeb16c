package field

import (
	"sync"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// TranslationSet describes an array holding exactly one element per supported
// language. Each element is validated against the schema returned by elem.
// The accessor is resolved lazily so element schemas may reference types
// declared later.
func TranslationSet(elem func() *Schema, opts TranslationOptions) Descriptor {
	if elem == nil {
		misconfigured(KindTranslations, "elem", "accessor must not be nil")
	}
	if opts.Languages <= 0 {
		misconfigured(KindTranslations, "Languages", "must be positive")
	}

	nested := sync.OnceValue(elem)

	b := newBuilder(KindTranslations, false).
		validateWhole(
			validator.IsArray(),
			validator.ArrayMinSize(opts.Languages),
			validator.ArrayMaxSize(opts.Languages),
		)
	b.d.nested = nested

	return b.metadata(opts.SkipSchema, Metadata{
		Type:        "object",
		IsArray:     true,
		Description: opts.Description,
		MinItems:    Ptr(opts.Languages),
		MaxItems:    Ptr(opts.Languages),
		items:       nested,
	}).build()
}
