package field

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Mode controls how many failures a validation pass collects.
type Mode int

const (
	// ModeAll runs every rule of every field.
	ModeAll Mode = iota
	// ModeFirst stops at the first failing rule of the payload.
	ModeFirst
)

func (m Mode) String() string {
	if m == ModeFirst {
		return "first"
	}
	return "all"
}

// ParseMode maps "all" and "first" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ModeAll, nil
	case "first":
		return ModeFirst, nil
	default:
		return ModeAll, fmt.Errorf("%w: unknown validation mode %q", ErrConfiguration, s)
	}
}

// Entry binds a field name to its descriptor.
type Entry struct {
	Name       string
	Descriptor Descriptor
}

// Named is shorthand for an Entry literal.
func Named(name string, d Descriptor) Entry {
	return Entry{Name: name, Descriptor: d}
}

// Schema is a named DTO: an ordered set of field descriptors.
type Schema struct {
	name    string
	entries []Entry
	index   map[string]int
}

// NewSchema declares a DTO. It panics with *ConfigurationError on an empty
// schema name, an empty field name or a duplicate field.
func NewSchema(name string, entries ...Entry) *Schema {
	if name == "" {
		panic(&ConfigurationError{Subject: "schema", Option: "name", Reason: "must not be empty"})
	}

	s := &Schema{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			panic(&ConfigurationError{Subject: "schema " + name, Option: "field", Reason: "name must not be empty"})
		}
		if _, dup := s.index[e.Name]; dup {
			panic(&ConfigurationError{Subject: "schema " + name, Option: e.Name, Reason: "duplicate field"})
		}
		s.index[e.Name] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Fields returns the entries in declaration order.
func (s *Schema) Fields() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Schema) Lookup(name string) (Descriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return s.entries[i].Descriptor, true
}

// Validate runs every field against input and collects all failures.
// The result holds only declared fields that are present, with coerced and
// transformed values. The error is validator.ValidationErrors.
func (s *Schema) Validate(input map[string]any) (map[string]any, error) {
	return s.ValidateMode(input, ModeAll)
}

func (s *Schema) ValidateMode(input map[string]any, mode Mode) (map[string]any, error) {
	out, errs := s.validate(input, mode, "")
	if !errs.IsEmpty() {
		return out, errs
	}
	return out, nil
}

func (s *Schema) validate(input map[string]any, mode Mode, prefix string) (map[string]any, validator.ValidationErrors) {
	out := make(map[string]any, len(s.entries))
	var errs validator.ValidationErrors

	for _, e := range s.entries {
		raw, present := input[e.Name]
		value, fieldErrs := e.Descriptor.Process(prefix+e.Name, raw, present, mode)
		if !Absent(raw, present) {
			out[e.Name] = value
		}
		if fieldErrs.IsEmpty() {
			continue
		}
		errs = append(errs, fieldErrs...)
		if mode == ModeFirst {
			return out, errs
		}
	}
	return out, errs
}

// Serialize applies coercion and transforms to an outgoing payload without
// validating it. Undeclared keys and null values are dropped.
func (s *Schema) Serialize(output map[string]any) map[string]any {
	out := make(map[string]any, len(s.entries))
	for _, e := range s.entries {
		raw, present := output[e.Name]
		if Absent(raw, present) {
			continue
		}
		out[e.Name] = e.Descriptor.Transform(raw)
	}
	return out
}

// Metadata lists published field metadata in declaration order. Fields built
// with SkipSchema are left out.
func (s *Schema) Metadata() []NamedMetadata {
	var out []NamedMetadata
	for _, e := range s.entries {
		if m, ok := e.Descriptor.Metadata(); ok {
			out = append(out, NamedMetadata{Name: e.Name, Metadata: m})
		}
	}
	return out
}
