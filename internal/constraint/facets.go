package constraint

// Text declares the facets attached to a text element: inclusive length
// bounds and an optional pattern. Facets are defined statically alongside the
// entity shape; Check applies only the declared ones, in the order length
// then pattern.
type Text struct {
	MinLength int
	MaxLength int
	Pattern   *Pattern
}

// Check validates a text value against the declared facets.
func (c Text) Check(field, value string) error {
	if c.MinLength > 0 || c.MaxLength > 0 {
		if err := Length(field, value, c.MinLength, c.MaxLength); err != nil {
			return err
		}
	}
	if c.Pattern != nil {
		if err := Match(field, value, c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// Number declares the facets attached to a numeric element. Only an inclusive
// minimum appears in the catalogue; Min is a pointer so "no bound" stays
// distinguishable from a zero bound.
type Number struct {
	Min *float64
}

// Check validates a numeric value against the declared facets.
func (c Number) Check(field string, value float64) error {
	if c.Min != nil {
		return Minimum(field, value, *c.Min)
	}
	return nil
}

// Float is a convenience for declaring Number facets inline.
func Float(v float64) *float64 {
	return &v
}
