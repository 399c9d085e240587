package admi

import (
	"encoding/xml"

	"github.com/goliatone/go-iso20022/pkg/constraint"
)

// Text facets declared by admi.002.001.01. Declared once, used by both the
// validators and the schema exporter.
var (
	max35Text    = constraint.Text{MinLength: 1, MaxLength: 35}
	max350Text   = constraint.Text{MinLength: 1, MaxLength: 350}
	max20000Text = constraint.Text{MinLength: 1, MaxLength: 20000}
)

// Facets lists the scalar facets declared by this message set, keyed by
// schema type name.
func Facets() map[string]constraint.Text {
	return map[string]constraint.Text{
		"Max35Text":    max35Text,
		"Max350Text":   max350Text,
		"Max20000Text": max20000Text,
	}
}

// ISODateTime carries a schema date-time string; it declares no facets.
type ISODateTime string

func (v ISODateTime) Validate() error {
	return nil
}

// MessageReference identifies the message being rejected.
type MessageReference struct {
	Ref string `json:"Ref" xml:"Ref"`
}

func (m MessageReference) Validate() error {
	return max35Text.Check("Ref", m.Ref)
}

// RejectionReason2 explains why the referenced message was rejected. All
// optional members are skipped when absent.
type RejectionReason2 struct {
	RjctgPtyRsn string       `json:"RjctgPtyRsn" xml:"RjctgPtyRsn"`
	RjctnDtTm   *ISODateTime `json:"RjctnDtTm,omitempty" xml:"RjctnDtTm,omitempty"`
	ErrLctn     *string      `json:"ErrLctn,omitempty" xml:"ErrLctn,omitempty"`
	RsnDesc     *string      `json:"RsnDesc,omitempty" xml:"RsnDesc,omitempty"`
	AddtlData   *string      `json:"AddtlData,omitempty" xml:"AddtlData,omitempty"`
}

func (r RejectionReason2) Validate() error {
	if err := max35Text.Check("RjctgPtyRsn", r.RjctgPtyRsn); err != nil {
		return err
	}
	if r.RjctnDtTm != nil {
		if err := r.RjctnDtTm.Validate(); err != nil {
			return err
		}
	}
	if r.ErrLctn != nil {
		if err := max350Text.Check("ErrLctn", *r.ErrLctn); err != nil {
			return err
		}
	}
	if r.RsnDesc != nil {
		if err := max350Text.Check("RsnDesc", *r.RsnDesc); err != nil {
			return err
		}
	}
	if r.AddtlData != nil {
		if err := max20000Text.Check("AddtlData", *r.AddtlData); err != nil {
			return err
		}
	}
	return nil
}

// MessageRejectionV01 is the admi.002.001.01 message body: a reference to the
// offending message plus the rejection reason.
type MessageRejectionV01 struct {
	RltdRef MessageReference `json:"RltdRef" xml:"RltdRef"`
	Rsn     RejectionReason2 `json:"Rsn" xml:"Rsn"`
}

func (m MessageRejectionV01) Validate() error {
	if err := m.RltdRef.Validate(); err != nil {
		return err
	}
	return m.Rsn.Validate()
}

// Document is the ISO business-payload envelope for admi.002.001.01. The
// inner element is literally named after the message identifier in this
// message set.
type Document struct {
	XMLName xml.Name            `json:"-" xml:"urn:iso:std:iso:20022:tech:xsd:admi.002.001.01 Document"`
	MsgRjct MessageRejectionV01 `json:"admi.002.001.01" xml:"admi.002.001.01"`
}

func (d Document) Validate() error {
	return d.MsgRjct.Validate()
}
