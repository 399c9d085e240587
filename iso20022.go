package iso20022

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/goliatone/go-iso20022/pkg/constraint"
)

// Validator is the per-entity validation contract implemented by every
// message, entity, choice, and scalar wrapper in the catalogue.
type Validator = constraint.Validator

// ValidationError is the code/message violation pair returned by Validate.
type ValidationError = constraint.ValidationError

// Validate runs an entity's validator. It exists so callers holding a nil
// interface do not have to guard the call themselves.
func Validate(v Validator) error {
	if v == nil {
		return nil
	}
	return v.Validate()
}

// Unmarshal decodes a JSON message payload into T and validates it before
// returning. Decode failures are wrapped; validation failures are returned
// unchanged so callers can branch on the violation code.
func Unmarshal[T Validator](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("iso20022: decode: %w", err)
	}
	if err := v.Validate(); err != nil {
		return v, err
	}
	return v, nil
}

// UnmarshalXML decodes the ISO-native XML representation into T and validates
// it before returning.
func UnmarshalXML[T Validator](data []byte) (T, error) {
	var v T
	if err := xml.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("iso20022: decode: %w", err)
	}
	if err := v.Validate(); err != nil {
		return v, err
	}
	return v, nil
}
