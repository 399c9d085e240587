package reda

import "fmt"

// Code sets are closed: decoding rejects unknown discriminants, so a
// constructed value always holds a permitted code and Validate has nothing
// left to check.

// AddressType2Code qualifies a postal address.
type AddressType2Code string

const (
	AddressTypeAddress  AddressType2Code = "ADDR"
	AddressTypePOBox    AddressType2Code = "PBOX"
	AddressTypeHome     AddressType2Code = "HOME"
	AddressTypeBusiness AddressType2Code = "BIZZ"
	AddressTypeMailTo   AddressType2Code = "MLTO"
	AddressTypeDelivery AddressType2Code = "DLVY"
)

func (c AddressType2Code) Validate() error {
	return nil
}

func (c AddressType2Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *AddressType2Code) UnmarshalText(text []byte) error {
	switch v := AddressType2Code(text); v {
	case AddressTypeAddress, AddressTypePOBox, AddressTypeHome,
		AddressTypeBusiness, AddressTypeMailTo, AddressTypeDelivery:
		*c = v
		return nil
	}
	return fmt.Errorf("reda: invalid AddressType2Code %q", text)
}

// AddressType2CodeValues returns the permitted discriminants in schema order.
func AddressType2CodeValues() []string {
	return []string{"ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY"}
}

// Appearance1Code describes the physical appearance of a security.
type Appearance1Code string

const (
	AppearanceDelivery          Appearance1Code = "DELI"
	AppearanceNonDelivery       Appearance1Code = "NDEL"
	AppearanceLimited           Appearance1Code = "LIMI"
	AppearanceBookEntry         Appearance1Code = "BENT"
	AppearanceDeferredBookEntry Appearance1Code = "DFBE"
	AppearanceDeliveryBookEntry Appearance1Code = "DLBE"
	AppearanceTemporaryGlobal   Appearance1Code = "TMPG"
	AppearancePermanentGlobal   Appearance1Code = "GLOB"
)

func (c Appearance1Code) Validate() error {
	return nil
}

func (c Appearance1Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *Appearance1Code) UnmarshalText(text []byte) error {
	switch v := Appearance1Code(text); v {
	case AppearanceDelivery, AppearanceNonDelivery, AppearanceLimited,
		AppearanceBookEntry, AppearanceDeferredBookEntry,
		AppearanceDeliveryBookEntry, AppearanceTemporaryGlobal,
		AppearancePermanentGlobal:
		*c = v
		return nil
	}
	return fmt.Errorf("reda: invalid Appearance1Code %q", text)
}

// Appearance1CodeValues returns the permitted discriminants in schema order.
func Appearance1CodeValues() []string {
	return []string{"DELI", "NDEL", "LIMI", "BENT", "DFBE", "DLBE", "TMPG", "GLOB"}
}

// PriceValueType3Code qualifies how a price value is expressed.
type PriceValueType3Code string

const (
	PriceValueDiscount PriceValueType3Code = "DISC"
	PriceValuePremium  PriceValueType3Code = "PREM"
	PriceValueParValue PriceValueType3Code = "PARV"
	PriceValueYield    PriceValueType3Code = "YIEL"
)

func (c PriceValueType3Code) Validate() error {
	return nil
}

func (c PriceValueType3Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *PriceValueType3Code) UnmarshalText(text []byte) error {
	switch v := PriceValueType3Code(text); v {
	case PriceValueDiscount, PriceValuePremium, PriceValueParValue, PriceValueYield:
		*c = v
		return nil
	}
	return fmt.Errorf("reda: invalid PriceValueType3Code %q", text)
}

// PriceValueType3CodeValues returns the permitted discriminants in schema
// order.
func PriceValueType3CodeValues() []string {
	return []string{"DISC", "PREM", "PARV", "YIEL"}
}

// TypeOfPrice1Code qualifies the kind of price quoted.
type TypeOfPrice1Code string

const (
	PriceTypeAverage            TypeOfPrice1Code = "AVER"
	PriceTypeAverageOverride    TypeOfPrice1Code = "AVOV"
	PriceTypeCombined           TypeOfPrice1Code = "COMB"
	PriceTypeGrossExecution     TypeOfPrice1Code = "GREX"
	PriceTypeLimit              TypeOfPrice1Code = "LIMI"
	PriceTypeNet2               TypeOfPrice1Code = "NET2"
	PriceTypeNetDisclosed       TypeOfPrice1Code = "NDIS"
	PriceTypeNet1               TypeOfPrice1Code = "NET1"
	PriceTypeNetUndisclosed     TypeOfPrice1Code = "NUND"
	PriceTypeNotionalGrossPrice TypeOfPrice1Code = "NOGR"
	PriceTypeParValue           TypeOfPrice1Code = "PARV"
	PriceTypeRunningDayAverage  TypeOfPrice1Code = "RDAV"
	PriceTypeStop               TypeOfPrice1Code = "STOP"
)

func (c TypeOfPrice1Code) Validate() error {
	return nil
}

func (c TypeOfPrice1Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *TypeOfPrice1Code) UnmarshalText(text []byte) error {
	switch v := TypeOfPrice1Code(text); v {
	case PriceTypeAverage, PriceTypeAverageOverride, PriceTypeCombined,
		PriceTypeGrossExecution, PriceTypeLimit, PriceTypeNet2,
		PriceTypeNetDisclosed, PriceTypeNet1, PriceTypeNetUndisclosed,
		PriceTypeNotionalGrossPrice, PriceTypeParValue,
		PriceTypeRunningDayAverage, PriceTypeStop:
		*c = v
		return nil
	}
	return fmt.Errorf("reda: invalid TypeOfPrice1Code %q", text)
}

// TypeOfPrice1CodeValues returns the permitted discriminants in schema order.
func TypeOfPrice1CodeValues() []string {
	return []string{
		"AVER", "AVOV", "COMB", "GREX", "LIMI", "NET2", "NDIS",
		"NET1", "NUND", "NOGR", "PARV", "RDAV", "STOP",
	}
}
