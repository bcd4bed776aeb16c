package openapi

import (
	"github.com/go-openapi/spec"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// DefinitionRef returns the local reference to a named definition.
func DefinitionRef(name string) string {
	return "#/definitions/" + name
}

// SchemaFor converts the published metadata of a DTO into an object schema.
// Fields are listed in declaration order through x-order; required fields are
// those not wrapped with field.Optional.
func SchemaFor(s *field.Schema) spec.Schema {
	out := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       spec.StringOrArray{"object"},
			Title:      s.Name(),
			Properties: spec.SchemaProperties{},
		},
	}

	for i, nm := range s.Metadata() {
		prop := PropertyFor(nm.Metadata)
		prop.AddExtension("x-order", i)
		out.Properties[nm.Name] = prop
		if nm.Metadata.Required {
			out.Required = append(out.Required, nm.Name)
		}
	}
	return out
}

// PropertyFor converts one field's metadata. Array fields carry element
// constraints on items and item counts on the array itself.
func PropertyFor(m field.Metadata) spec.Schema {
	if nested := m.Items(); nested != nil {
		items := spec.RefSchema(DefinitionRef(nested.Name()))
		prop := *spec.ArrayProperty(items)
		prop.Description = m.Description
		prop.MinItems = toInt64(m.MinItems)
		prop.MaxItems = toInt64(m.MaxItems)
		return prop
	}

	elem := elementSchema(m)
	if !m.IsArray {
		elem.Description = m.Description
		elem.Example = m.Example
		return elem
	}

	prop := *spec.ArrayProperty(&elem)
	prop.Description = m.Description
	prop.MinItems = toInt64(m.MinItems)
	prop.MaxItems = toInt64(m.MaxItems)
	if m.Example != nil {
		prop.Example = []any{m.Example}
	}
	return prop
}

func elementSchema(m field.Metadata) spec.Schema {
	s := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:      spec.StringOrArray{m.Type},
			Format:    m.Format,
			Pattern:   m.Pattern,
			MinLength: toInt64(m.MinLength),
			MaxLength: toInt64(m.MaxLength),
			Minimum:   m.Minimum,
			Maximum:   m.Maximum,
		},
	}
	if values := m.EnumValues(); values != nil {
		s.Enum = values
	}
	if m.EnumName != "" {
		s.AddExtension("x-enum-name", m.EnumName)
	}
	return s
}

func toInt64(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
