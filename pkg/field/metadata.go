package field

import "slices"

// Metadata is the schema fragment a descriptor publishes for its field.
// Type describes a single element; IsArray marks a sequence of such elements.
type Metadata struct {
	Type        string
	Format      string
	IsArray     bool
	Required    bool
	Description string
	Example     any
	EnumName    string
	Pattern     string
	MinLength   *int
	MaxLength   *int
	Minimum     *float64
	Maximum     *float64
	MinItems    *int
	MaxItems    *int

	enum  func() []any
	items func() *Schema
}

// EnumValues resolves the enum accessor. It returns nil for non-enum fields.
// The result is a copy.
func (m Metadata) EnumValues() []any {
	if m.enum == nil {
		return nil
	}
	return slices.Clone(m.enum())
}

// Items resolves the nested element schema of a translation set.
func (m Metadata) Items() *Schema {
	if m.items == nil {
		return nil
	}
	return m.items()
}

// NamedMetadata pairs a field name with its metadata.
type NamedMetadata struct {
	Name     string
	Metadata Metadata
}

// clone returns m with every bound pointer copied, so neither the caller's
// options nor a reader of the result can change the published bounds.
func (m Metadata) clone() Metadata {
	m.MinLength = clonePtr(m.MinLength)
	m.MaxLength = clonePtr(m.MaxLength)
	m.Minimum = clonePtr(m.Minimum)
	m.Maximum = clonePtr(m.Maximum)
	m.MinItems = clonePtr(m.MinItems)
	m.MaxItems = clonePtr(m.MaxItems)
	return m
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
