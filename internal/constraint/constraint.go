package constraint

import (
	"fmt"
	"unicode/utf8"
)

// Violation codes shared by every generated validator. Callers branch on
// these, so the numeric values are part of the public contract.
const (
	CodeTooShort        = 1001
	CodeTooLong         = 1002
	CodeBelowMinimum    = 1003
	CodePatternMismatch = 1005
)

// ValidationError reports a single failed constraint as a code/message pair.
// It signals a data-validity failure: the message violates its own declared
// schema and must be rejected, never retried as-is. Schema definition
// mistakes (such as a malformed facet pattern) are programmer errors and
// surface as panics at construction time instead.
type ValidationError struct {
	Code    int
	Message string
}

// NewError builds a ValidationError for the given code and message.
func NewError(code int, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error %d: %s", e.Code, e.Message)
}

// Validator is implemented by every entity, choice, and scalar wrapper in the
// message catalogue. Validate reads the receiver, never mutates it, and
// returns the first violation found across the receiver's fields and their
// transitive children.
type Validator interface {
	Validate() error
}

// Length checks inclusive character-count bounds. Characters are counted as
// Unicode code points, not bytes. The too-short check runs before the
// too-long check; a max of zero means unbounded above.
func Length(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return NewError(CodeTooShort, fmt.Sprintf("%s is shorter than the minimum length of %d", field, min))
	}
	if max > 0 && n > max {
		return NewError(CodeTooLong, fmt.Sprintf("%s exceeds the maximum length of %d", field, max))
	}
	return nil
}

// Match checks the value against a compiled facet pattern. Patterns are
// anchored by MustPattern, so the whole value has to match, not a substring.
func Match(field, value string, p *Pattern) error {
	if !p.MatchString(value) {
		return NewError(CodePatternMismatch, fmt.Sprintf("%s does not match the required pattern", field))
	}
	return nil
}

// Minimum checks an inclusive numeric lower bound. There is no symmetric
// maximum primitive: no schema in the catalogue declares one, and inferring a
// bound that is not in the schema would reject valid messages.
func Minimum(field string, value, min float64) error {
	if value < min {
		return NewError(CodeBelowMinimum, fmt.Sprintf("%s is less than the minimum value of %f", field, min))
	}
	return nil
}

// Each validates every element of a collection in sequence order and returns
// the first element failure. An empty collection is always valid.
func Each[T Validator](items []T) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Populated counts how many alternatives of a choice are set. Generated
// choice validators accept any populated subset, since the upstream schemas
// never enforced mutual exclusivity; strict callers assert Populated(...) == 1
// before validating.
func Populated(present ...bool) int {
	n := 0
	for _, p := range present {
		if p {
			n++
		}
	}
	return n
}
