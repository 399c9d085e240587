package constraint

import "regexp"

// Pattern is a compiled facet pattern. The source expression is retained so
// exporters can round-trip the schema, and the compiled form is read-only
// after construction, making it safe to share across concurrent validators.
type Pattern struct {
	re     *regexp.Regexp
	source string
}

// MustPattern compiles an ISO 20022 facet expression anchored to the entire
// value. A malformed expression is a schema-definition bug, so compilation
// failures panic at package initialisation rather than flowing into the
// per-instance validation channel.
func MustPattern(expr string) *Pattern {
	return &Pattern{
		re:     regexp.MustCompile(`\A(?:` + expr + `)\z`),
		source: expr,
	}
}

// MatchString reports whether the whole value matches the pattern.
func (p *Pattern) MatchString(value string) bool {
	return p.re.MatchString(value)
}

// Source returns the facet expression as declared in the schema, without the
// anchoring added at compile time.
func (p *Pattern) Source() string {
	return p.source
}

func (p *Pattern) String() string {
	return p.source
}
