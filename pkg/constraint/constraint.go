package constraint

import internalconstraint "github.com/goliatone/go-iso20022/internal/constraint"

// Violation codes re-exported from the internal implementation. The numeric
// values are part of the public contract; callers branch on them.
const (
	CodeTooShort        = internalconstraint.CodeTooShort
	CodeTooLong         = internalconstraint.CodeTooLong
	CodeBelowMinimum    = internalconstraint.CodeBelowMinimum
	CodePatternMismatch = internalconstraint.CodePatternMismatch
)

// ValidationError re-exports the internal code/message violation pair.
type ValidationError = internalconstraint.ValidationError

// Validator is the per-entity validation contract.
type Validator = internalconstraint.Validator

// Pattern is a compiled, anchored facet pattern.
type Pattern = internalconstraint.Pattern

// Text declares length and pattern facets for a text element.
type Text = internalconstraint.Text

// Number declares the numeric facets for a decimal element.
type Number = internalconstraint.Number

// NewError builds a ValidationError for the given code and message.
func NewError(code int, message string) *ValidationError {
	return internalconstraint.NewError(code, message)
}

// Length checks inclusive rune-count bounds; see internal/constraint.
func Length(field, value string, min, max int) error {
	return internalconstraint.Length(field, value, min, max)
}

// Match checks a value against an anchored facet pattern.
func Match(field, value string, p *Pattern) error {
	return internalconstraint.Match(field, value, p)
}

// Minimum checks an inclusive numeric lower bound.
func Minimum(field string, value, min float64) error {
	return internalconstraint.Minimum(field, value, min)
}

// MustPattern compiles a facet expression anchored to the entire value,
// panicking on a malformed expression.
func MustPattern(expr string) *Pattern {
	return internalconstraint.MustPattern(expr)
}

// Each validates collection elements in order, returning the first failure.
func Each[T Validator](items []T) error {
	return internalconstraint.Each(items)
}

// Populated counts how many alternatives of a choice are set.
func Populated(present ...bool) int {
	return internalconstraint.Populated(present...)
}

// Float declares an inline numeric bound for Number facets.
func Float(v float64) *float64 {
	return internalconstraint.Float(v)
}
