package iso20022_test

import (
	"errors"
	"strings"
	"testing"

	iso20022 "github.com/goliatone/go-iso20022"
	"github.com/goliatone/go-iso20022/pkg/constraint"
	"github.com/goliatone/go-iso20022/pkg/iso/reda"
)

func TestValidateNilValidator(t *testing.T) {
	if err := iso20022.Validate(nil); err != nil {
		t.Fatalf("nil validator: %v", err)
	}
}

func TestValidateDelegates(t *testing.T) {
	if err := iso20022.Validate(reda.CountryCode("DE")); err != nil {
		t.Fatalf("validate: %v", err)
	}

	err := iso20022.Validate(reda.CountryCode("Germany"))
	var verr *constraint.ValidationError
	if !errors.As(err, &verr) || verr.Code != constraint.CodePatternMismatch {
		t.Fatalf("expected pattern violation, got %v", err)
	}
}

func TestUnmarshalWrapsDecodeErrors(t *testing.T) {
	_, err := iso20022.Unmarshal[reda.GenericIdentification30]([]byte(`{`))
	if err == nil || !strings.Contains(err.Error(), "iso20022: decode:") {
		t.Fatalf("expected wrapped decode error, got %v", err)
	}

	// Decode errors and validation errors travel on distinct channels.
	var verr *constraint.ValidationError
	if errors.As(err, &verr) {
		t.Fatal("decode error must not surface as a validation error")
	}
}

func TestUnmarshalValidatesAfterDecode(t *testing.T) {
	_, err := iso20022.Unmarshal[reda.GenericIdentification30]([]byte(`{"Id":"ABCD","Issr":""}`))
	var verr *constraint.ValidationError
	if !errors.As(err, &verr) || verr.Code != constraint.CodeTooShort {
		t.Fatalf("expected too-short violation, got %v", err)
	}

	id, err := iso20022.Unmarshal[reda.GenericIdentification30]([]byte(`{"Id":"ABCD","Issr":"DTCC"}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if id.Id != "ABCD" || id.Issr != "DTCC" {
		t.Fatalf("unexpected decode result: %+v", id)
	}
}

func TestUnmarshalXMLValidates(t *testing.T) {
	payload := []byte(`<GenericIdentification30><Id>ABCD</Id><Issr>DTCC</Issr></GenericIdentification30>`)
	id, err := iso20022.UnmarshalXML[reda.GenericIdentification30](payload)
	if err != nil {
		t.Fatalf("unmarshal xml: %v", err)
	}
	if id.Id != "ABCD" {
		t.Fatalf("unexpected decode result: %+v", id)
	}
}
