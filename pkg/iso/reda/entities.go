package reda

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-iso20022/pkg/constraint"
)

// GenericIdentification30 is a proprietary identification scheme entry.
type GenericIdentification30 struct {
	Id      Exact4AlphaNumericText `json:"Id" xml:"Id"`
	Issr    Max35Text              `json:"Issr" xml:"Issr"`
	SchmeNm *Max35Text             `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
}

func (g GenericIdentification30) Validate() error {
	if err := g.Id.Validate(); err != nil {
		return err
	}
	if err := g.Issr.Validate(); err != nil {
		return err
	}
	if g.SchmeNm != nil {
		if err := g.SchmeNm.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Appearance3Choice selects between an ISO code and a proprietary
// identification. Whichever alternatives are populated are validated; the
// schema's one-of cardinality is not enforced here (see Populated).
type Appearance3Choice struct {
	Cd    *Appearance1Code         `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *GenericIdentification30 `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c Appearance3Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return err
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Populated reports how many alternatives are set. Strict callers assert a
// count of one before validating.
func (c Appearance3Choice) Populated() int {
	return constraint.Populated(c.Cd != nil, c.Prtry != nil)
}

// IdentificationSource3Choice selects between an external code-list entry and
// a proprietary source for a security identifier.
type IdentificationSource3Choice struct {
	Cd    *ExternalFinancialInstrumentIdentificationType1Code `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *Max35Text                                          `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c IdentificationSource3Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return err
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Populated reports how many alternatives are set.
func (c IdentificationSource3Choice) Populated() int {
	return constraint.Populated(c.Cd != nil, c.Prtry != nil)
}

// OtherIdentification1 is a non-ISIN security identifier with its source.
type OtherIdentification1 struct {
	Id  Max35Text                   `json:"Id" xml:"Id"`
	Sfx *Max16Text                  `json:"Sfx,omitempty" xml:"Sfx,omitempty"`
	Tp  IdentificationSource3Choice `json:"Tp" xml:"Tp"`
}

func (o OtherIdentification1) Validate() error {
	if err := o.Id.Validate(); err != nil {
		return err
	}
	if o.Sfx != nil {
		if err := o.Sfx.Validate(); err != nil {
			return err
		}
	}
	return o.Tp.Validate()
}

// SecurityIdentification19 identifies a financial instrument by ISIN and/or
// alternative identifiers.
type SecurityIdentification19 struct {
	ISIN   *ISINOct2015Identifier `json:"ISIN,omitempty" xml:"ISIN,omitempty"`
	OthrId []OtherIdentification1 `json:"OthrId,omitempty" xml:"OthrId,omitempty"`
	Desc   *Max140Text            `json:"Desc,omitempty" xml:"Desc,omitempty"`
}

func (s SecurityIdentification19) Validate() error {
	if s.ISIN != nil {
		if err := s.ISIN.Validate(); err != nil {
			return err
		}
	}
	if err := constraint.Each(s.OthrId); err != nil {
		return err
	}
	if s.Desc != nil {
		if err := s.Desc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PostalAddress1 is a structured postal address. Only the country is
// mandatory; address lines are validated element-wise in order.
type PostalAddress1 struct {
	AdrTp       *AddressType2Code `json:"AdrTp,omitempty" xml:"AdrTp,omitempty"`
	AdrLine     []Max70Text       `json:"AdrLine,omitempty" xml:"AdrLine,omitempty"`
	StrtNm      *Max70Text        `json:"StrtNm,omitempty" xml:"StrtNm,omitempty"`
	BldgNb      *Max16Text        `json:"BldgNb,omitempty" xml:"BldgNb,omitempty"`
	PstCd       *Max16Text        `json:"PstCd,omitempty" xml:"PstCd,omitempty"`
	TwnNm       *Max35Text        `json:"TwnNm,omitempty" xml:"TwnNm,omitempty"`
	CtrySubDvsn *Max35Text        `json:"CtrySubDvsn,omitempty" xml:"CtrySubDvsn,omitempty"`
	Ctry        CountryCode       `json:"Ctry" xml:"Ctry"`
}

func (p PostalAddress1) Validate() error {
	if p.AdrTp != nil {
		if err := p.AdrTp.Validate(); err != nil {
			return err
		}
	}
	if err := constraint.Each(p.AdrLine); err != nil {
		return err
	}
	if p.StrtNm != nil {
		if err := p.StrtNm.Validate(); err != nil {
			return err
		}
	}
	if p.BldgNb != nil {
		if err := p.BldgNb.Validate(); err != nil {
			return err
		}
	}
	if p.PstCd != nil {
		if err := p.PstCd.Validate(); err != nil {
			return err
		}
	}
	if p.TwnNm != nil {
		if err := p.TwnNm.Validate(); err != nil {
			return err
		}
	}
	if p.CtrySubDvsn != nil {
		if err := p.CtrySubDvsn.Validate(); err != nil {
			return err
		}
	}
	return p.Ctry.Validate()
}

// NameAndAddress5 pairs a party name with an optional structured address.
type NameAndAddress5 struct {
	Nm  Max350Text      `json:"Nm" xml:"Nm"`
	Adr *PostalAddress1 `json:"Adr,omitempty" xml:"Adr,omitempty"`
}

func (n NameAndAddress5) Validate() error {
	if err := n.Nm.Validate(); err != nil {
		return err
	}
	if n.Adr != nil {
		return n.Adr.Validate()
	}
	return nil
}

// PartyIdentification120Choice selects among the representations of a party:
// a BIC, a proprietary identifier, or a name and address.
type PartyIdentification120Choice struct {
	AnyBIC   *AnyBICDec2014Identifier `json:"AnyBIC,omitempty" xml:"AnyBIC,omitempty"`
	PrtryId  *GenericIdentification30 `json:"PrtryId,omitempty" xml:"PrtryId,omitempty"`
	NmAndAdr *NameAndAddress5         `json:"NmAndAdr,omitempty" xml:"NmAndAdr,omitempty"`
}

func (c PartyIdentification120Choice) Validate() error {
	if c.AnyBIC != nil {
		if err := c.AnyBIC.Validate(); err != nil {
			return err
		}
	}
	if c.PrtryId != nil {
		if err := c.PrtryId.Validate(); err != nil {
			return err
		}
	}
	if c.NmAndAdr != nil {
		if err := c.NmAndAdr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Populated reports how many alternatives are set.
func (c PartyIdentification120Choice) Populated() int {
	return constraint.Populated(c.AnyBIC != nil, c.PrtryId != nil, c.NmAndAdr != nil)
}

// PriceRateOrAmount3Choice expresses a price either as a rate or as a
// currency amount.
type PriceRateOrAmount3Choice struct {
	Rate *BaseOneRate             `json:"Rate,omitempty" xml:"Rate,omitempty"`
	Amt  *ActiveCurrencyAndAmount `json:"Amt,omitempty" xml:"Amt,omitempty"`
}

func (c PriceRateOrAmount3Choice) Validate() error {
	if c.Rate != nil {
		if err := c.Rate.Validate(); err != nil {
			return err
		}
	}
	if c.Amt != nil {
		if err := c.Amt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Populated reports how many alternatives are set.
func (c PriceRateOrAmount3Choice) Populated() int {
	return constraint.Populated(c.Rate != nil, c.Amt != nil)
}

// Price8 is a price value with optional qualifiers on how it is expressed and
// what kind of price it is.
type Price8 struct {
	ValTp  *PriceValueType3Code     `json:"ValTp,omitempty" xml:"ValTp,omitempty"`
	Val    PriceRateOrAmount3Choice `json:"Val" xml:"Val"`
	PricTp *TypeOfPrice1Code        `json:"PricTp,omitempty" xml:"PricTp,omitempty"`
}

func (p Price8) Validate() error {
	if p.ValTp != nil {
		if err := p.ValTp.Validate(); err != nil {
			return err
		}
	}
	if err := p.Val.Validate(); err != nil {
		return err
	}
	if p.PricTp != nil {
		return p.PricTp.Validate()
	}
	return nil
}

// ActiveCurrencyAndAmount is an amount qualified by its currency. On the wire
// the currency is an attribute and the amount is the element's character
// data, which needs explicit XML handling since chardata only binds to string
// fields.
type ActiveCurrencyAndAmount struct {
	Ccy   ActiveCurrencyCode                `json:"Ccy"`
	Value ActiveCurrencyAndAmountSimpleType `json:"Value"`
}

func (a ActiveCurrencyAndAmount) Validate() error {
	if err := a.Ccy.Validate(); err != nil {
		return err
	}
	return a.Value.Validate()
}

func (a ActiveCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{
		Name:  xml.Name{Local: "Ccy"},
		Value: string(a.Ccy),
	})
	value := strconv.FormatFloat(float64(a.Value), 'f', -1, 64)
	return e.EncodeElement(value, start)
}

func (a *ActiveCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Ccy   ActiveCurrencyCode `xml:"Ccy,attr"`
		Value string             `xml:",chardata"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw.Value), 64)
	if err != nil {
		return fmt.Errorf("reda: amount value: %w", err)
	}
	*a = ActiveCurrencyAndAmount{Ccy: raw.Ccy, Value: ActiveCurrencyAndAmountSimpleType(value)}
	return nil
}
