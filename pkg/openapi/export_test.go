package openapi_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-iso20022/pkg/constraint"
	"github.com/goliatone/go-iso20022/pkg/iso/admi"
	"github.com/goliatone/go-iso20022/pkg/iso/reda"
	"github.com/goliatone/go-iso20022/pkg/openapi"
	"github.com/goliatone/go-iso20022/pkg/testsupport"
)

func TestSchemaFromTextFacets(t *testing.T) {
	facet := constraint.Text{MinLength: 1, MaxLength: 35}
	schema := openapi.Schema(openapi.Definition{Title: "Max35Text", Text: &facet})

	if schema.MinLength != 1 {
		t.Fatalf("expected minLength 1, got %d", schema.MinLength)
	}
	if schema.MaxLength == nil || *schema.MaxLength != 35 {
		t.Fatalf("expected maxLength 35, got %v", schema.MaxLength)
	}
	if schema.Pattern != "" {
		t.Fatalf("expected no pattern, got %q", schema.Pattern)
	}
	if schema.Title != "Max35Text" {
		t.Fatalf("expected title Max35Text, got %q", schema.Title)
	}
}

func TestSchemaKeepsPatternSource(t *testing.T) {
	facet := constraint.Text{Pattern: constraint.MustPattern(`[A-Z]{2,2}`)}
	schema := openapi.Schema(openapi.Definition{Title: "CountryCode", Text: &facet})

	// The exported pattern is the declared facet expression, without the
	// anchoring the validator adds at compile time.
	if schema.Pattern != `[A-Z]{2,2}` {
		t.Fatalf("expected declared facet expression, got %q", schema.Pattern)
	}
}

func TestSchemaFromNumberFacets(t *testing.T) {
	facet := constraint.Number{Min: constraint.Float(0)}
	schema := openapi.Schema(openapi.Definition{Title: "Amount", Number: &facet})

	if schema.Min == nil || *schema.Min != 0 {
		t.Fatalf("expected minimum 0, got %v", schema.Min)
	}
	if schema.Format != "double" {
		t.Fatalf("expected double format, got %q", schema.Format)
	}
}

func TestComponentsGolden(t *testing.T) {
	defs := openapi.Merge(
		openapi.TextDefinitions(admi.Facets()),
		openapi.NumberDefinitions(reda.NumberFacets()),
		map[string]openapi.Definition{
			"Appearance1Code": openapi.EnumDefinition("Appearance1Code", reda.Appearance1CodeValues()),
		},
	)
	schemas := openapi.Components(defs)

	goldenPath := filepath.Join("testdata", "facet_components.golden.json")
	testsupport.WriteGolden(t, goldenPath, schemas)

	payload, err := json.Marshal(schemas)
	if err != nil {
		t.Fatalf("marshal components: %v", err)
	}

	var got, want map[string]any
	testsupport.MustUnmarshalJSON(t, payload, &got)
	testsupport.MustUnmarshalJSON(t, testsupport.MustReadGolden(t, goldenPath), &want)

	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
