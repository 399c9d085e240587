package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-iso20022/pkg/constraint"
)

// Definition couples a schema type name with its declared facets. Exactly one
// of Text, Number, or Enum is expected to be set.
type Definition struct {
	Title  string
	Text   *constraint.Text
	Number *constraint.Number
	Enum   []string
}

// Schema converts a definition into an OpenAPI schema. Text facets map to
// minLength/maxLength/pattern, numeric facets to an inclusive minimum, and
// code sets to a string enum.
func Schema(def Definition) *openapi3.Schema {
	var schema *openapi3.Schema

	switch {
	case def.Text != nil:
		schema = openapi3.NewStringSchema()
		if def.Text.MinLength > 0 {
			schema = schema.WithMinLength(int64(def.Text.MinLength))
		}
		if def.Text.MaxLength > 0 {
			schema = schema.WithMaxLength(int64(def.Text.MaxLength))
		}
		if def.Text.Pattern != nil {
			schema = schema.WithPattern(def.Text.Pattern.Source())
		}
	case def.Number != nil:
		// NewFloat64Schema leaves Format unset; amounts and rates are float64
		// on the wire, so the schema advertises the double format explicitly.
		schema = openapi3.NewFloat64Schema()
		schema.Format = "double"
		if def.Number.Min != nil {
			schema = schema.WithMin(*def.Number.Min)
		}
	case len(def.Enum) > 0:
		schema = openapi3.NewStringSchema()
		values := make([]any, len(def.Enum))
		for i, v := range def.Enum {
			values[i] = v
		}
		schema = schema.WithEnum(values...)
	default:
		schema = openapi3.NewStringSchema()
	}

	schema.Title = def.Title
	return schema
}

// Components maps named definitions into an OpenAPI components schema set.
func Components(defs map[string]Definition) openapi3.Schemas {
	schemas := make(openapi3.Schemas, len(defs))
	for name, def := range defs {
		if def.Title == "" {
			def.Title = name
		}
		schemas[name] = openapi3.NewSchemaRef("", Schema(def))
	}
	return schemas
}

// TextDefinitions lifts a catalogue's text facet map into definitions.
func TextDefinitions(facets map[string]constraint.Text) map[string]Definition {
	defs := make(map[string]Definition, len(facets))
	for name, facet := range facets {
		f := facet
		defs[name] = Definition{Title: name, Text: &f}
	}
	return defs
}

// NumberDefinitions lifts a catalogue's numeric facet map into definitions.
func NumberDefinitions(facets map[string]constraint.Number) map[string]Definition {
	defs := make(map[string]Definition, len(facets))
	for name, facet := range facets {
		f := facet
		defs[name] = Definition{Title: name, Number: &f}
	}
	return defs
}

// EnumDefinition builds a definition for a closed code set.
func EnumDefinition(name string, values []string) Definition {
	return Definition{Title: name, Enum: values}
}

// Merge combines definition maps; later maps win on name collisions.
func Merge(maps ...map[string]Definition) map[string]Definition {
	merged := make(map[string]Definition)
	for _, m := range maps {
		for name, def := range m {
			merged[name] = def
		}
	}
	return merged
}
