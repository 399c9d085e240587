package reda

import "github.com/goliatone/go-iso20022/pkg/constraint"

// Facet declarations for the scalar types in this message set. Patterns are
// compiled once at initialisation and shared by every validator.
var (
	max16Text  = constraint.Text{MinLength: 1, MaxLength: 16}
	max35Text  = constraint.Text{MinLength: 1, MaxLength: 35}
	max70Text  = constraint.Text{MinLength: 1, MaxLength: 70}
	max140Text = constraint.Text{MinLength: 1, MaxLength: 140}
	max350Text = constraint.Text{MinLength: 1, MaxLength: 350}

	externalFinInstrmIdTp = constraint.Text{MinLength: 1, MaxLength: 4}

	exact4AlphaNumericText  = constraint.Text{Pattern: constraint.MustPattern(`[a-zA-Z0-9]{4}`)}
	activeCurrencyCode      = constraint.Text{Pattern: constraint.MustPattern(`[A-Z]{3,3}`)}
	countryCode             = constraint.Text{Pattern: constraint.MustPattern(`[A-Z]{2,2}`)}
	anyBICDec2014Identifier = constraint.Text{Pattern: constraint.MustPattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)}
	leiIdentifier           = constraint.Text{Pattern: constraint.MustPattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)}
	isinOct2015Identifier   = constraint.Text{Pattern: constraint.MustPattern(`[A-Z]{2,2}[A-Z0-9]{9,9}[0-9]{1,1}`)}

	activeCurrencyAndAmountSimpleType = constraint.Number{Min: constraint.Float(0)}
)

// Facets lists the text facets declared by this message set, keyed by schema
// type name.
func Facets() map[string]constraint.Text {
	return map[string]constraint.Text{
		"Max16Text":  max16Text,
		"Max35Text":  max35Text,
		"Max70Text":  max70Text,
		"Max140Text": max140Text,
		"Max350Text": max350Text,

		"ExternalFinancialInstrumentIdentificationType1Code": externalFinInstrmIdTp,

		"Exact4AlphaNumericText":  exact4AlphaNumericText,
		"ActiveCurrencyCode":      activeCurrencyCode,
		"CountryCode":             countryCode,
		"AnyBICDec2014Identifier": anyBICDec2014Identifier,
		"LEIIdentifier":           leiIdentifier,
		"ISINOct2015Identifier":   isinOct2015Identifier,
	}
}

// NumberFacets lists the numeric facets declared by this message set.
func NumberFacets() map[string]constraint.Number {
	return map[string]constraint.Number{
		"ActiveCurrencyAndAmountSimpleType": activeCurrencyAndAmountSimpleType,
	}
}

// Max16Text is a bounded text of 1 to 16 characters.
type Max16Text string

func (v Max16Text) Validate() error {
	return max16Text.Check("Max16Text", string(v))
}

// Max35Text is a bounded text of 1 to 35 characters.
type Max35Text string

func (v Max35Text) Validate() error {
	return max35Text.Check("Max35Text", string(v))
}

// Max70Text is a bounded text of 1 to 70 characters.
type Max70Text string

func (v Max70Text) Validate() error {
	return max70Text.Check("Max70Text", string(v))
}

// Max140Text is a bounded text of 1 to 140 characters.
type Max140Text string

func (v Max140Text) Validate() error {
	return max140Text.Check("Max140Text", string(v))
}

// Max350Text is a bounded text of 1 to 350 characters.
type Max350Text string

func (v Max350Text) Validate() error {
	return max350Text.Check("Max350Text", string(v))
}

// ExternalFinancialInstrumentIdentificationType1Code is an externally
// maintained code list entry, bounded 1 to 4 characters.
type ExternalFinancialInstrumentIdentificationType1Code string

func (v ExternalFinancialInstrumentIdentificationType1Code) Validate() error {
	return externalFinInstrmIdTp.Check("ExternalFinancialInstrumentIdentificationType1Code", string(v))
}

// Exact4AlphaNumericText is exactly four alphanumeric characters.
type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate() error {
	return exact4AlphaNumericText.Check("Exact4AlphaNumericText", string(v))
}

// ActiveCurrencyCode is a three-letter ISO 4217 currency code.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate() error {
	return activeCurrencyCode.Check("ActiveCurrencyCode", string(v))
}

// CountryCode is a two-letter ISO 3166 country code.
type CountryCode string

func (v CountryCode) Validate() error {
	return countryCode.Check("CountryCode", string(v))
}

// AnyBICDec2014Identifier is a BIC per ISO 9362.
type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate() error {
	return anyBICDec2014Identifier.Check("AnyBICDec2014Identifier", string(v))
}

// LEIIdentifier is a legal entity identifier per ISO 17442.
type LEIIdentifier string

func (v LEIIdentifier) Validate() error {
	return leiIdentifier.Check("LEIIdentifier", string(v))
}

// ISINOct2015Identifier is an ISIN per ISO 6166.
type ISINOct2015Identifier string

func (v ISINOct2015Identifier) Validate() error {
	return isinOct2015Identifier.Check("ISINOct2015Identifier", string(v))
}

// ISODateTime carries a schema date-time string; it declares no facets.
type ISODateTime string

func (v ISODateTime) Validate() error {
	return nil
}

// ActiveCurrencyAndAmountSimpleType is a non-negative currency amount.
type ActiveCurrencyAndAmountSimpleType float64

func (v ActiveCurrencyAndAmountSimpleType) Validate() error {
	return activeCurrencyAndAmountSimpleType.Check("ActiveCurrencyAndAmountSimpleType", float64(v))
}

// BaseOneRate is a rate expressed against a base of one; no facets declared.
type BaseOneRate float64

func (v BaseOneRate) Validate() error {
	return nil
}
