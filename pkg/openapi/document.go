package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/spec"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// Info describes the published API.
type Info struct {
	Title       string
	Version     string
	Description string
	BasePath    string
}

// Document is a Swagger 2.0 document holding one definition per DTO schema.
// It is built once and read concurrently.
type Document struct {
	swagger *spec.Swagger
	json    []byte
	err     error
}

// NewDocument collects definitions for schemas and for every schema they
// reference through translation sets. Definitions are keyed by schema name;
// the first schema registered under a name wins.
func NewDocument(info Info, schemas ...*field.Schema) *Document {
	sw := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger:     "2.0",
			BasePath:    info.BasePath,
			Consumes:    []string{"application/json"},
			Produces:    []string{"application/json"},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{},
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       info.Title,
					Version:     info.Version,
					Description: info.Description,
				},
			},
		},
	}

	queue := append([]*field.Schema(nil), schemas...)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s == nil {
			continue
		}
		if _, done := sw.Definitions[s.Name()]; done {
			continue
		}
		sw.Definitions[s.Name()] = SchemaFor(s)

		for _, nm := range s.Metadata() {
			if nested := nm.Metadata.Items(); nested != nil {
				queue = append(queue, nested)
			}
		}
	}

	d := &Document{swagger: sw}
	d.json, d.err = json.MarshalIndent(sw, "", "  ")
	return d
}

// Swagger exposes the underlying document, e.g. to add paths.
func (d *Document) Swagger() *spec.Swagger {
	return d.swagger
}

// Definition returns the schema published under name.
func (d *Document) Definition(name string) (spec.Schema, bool) {
	s, ok := d.swagger.Definitions[name]
	return s, ok
}

func (d *Document) JSON() ([]byte, error) {
	if d.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, d.err)
	}
	return d.json, nil
}

// YAML renders the document as block-style YAML, keeping the JSON key order.
func (d *Document) YAML() ([]byte, error) {
	data, err := d.JSON()
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

// ReadDoc implements swag.Swagger.
func (d *Document) ReadDoc() string {
	data, err := d.JSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Register publishes the document in swag's registry under name, where
// swag.ReadDoc and the Swagger UI handler look it up. swag panics when a name
// is registered twice.
func (d *Document) Register(name string) {
	swag.Register(name, d)
}

// blockStyle clears the flow style JSON input leaves on every node.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
