package constraint_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-iso20022/internal/constraint"
	"github.com/goliatone/go-iso20022/pkg/testsupport"
)

func violationCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return 0
	}
	var verr *constraint.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	return verr.Code
}

func TestLengthBounds(t *testing.T) {
	require.NoError(t, constraint.Length("Nm", "A", 1, 140))
	require.NoError(t, constraint.Length("Nm", strings.Repeat("a", 140), 1, 140))

	err := constraint.Length("Nm", "", 1, 140)
	require.Equal(t, constraint.CodeTooShort, violationCode(t, err))
	require.Contains(t, err.Error(), "Nm is shorter than the minimum length of 1")

	err = constraint.Length("Nm", strings.Repeat("a", 141), 1, 140)
	require.Equal(t, constraint.CodeTooLong, violationCode(t, err))
	require.Contains(t, err.Error(), "Nm exceeds the maximum length of 140")
}

func TestLengthCountsRunes(t *testing.T) {
	// Three characters, six bytes.
	require.NoError(t, constraint.Length("Nm", "äöü", 3, 3))
	require.Equal(t, constraint.CodeTooLong, violationCode(t, constraint.Length("Nm", "äöüä", 3, 3)))
}

func TestLengthTooShortPrecedesTooLong(t *testing.T) {
	// Impossible bounds force both checks to fail; the first one wins.
	err := constraint.Length("Nm", "abc", 5, 2)
	require.Equal(t, constraint.CodeTooShort, violationCode(t, err))
}

func TestLengthUnboundedAbove(t *testing.T) {
	require.NoError(t, constraint.Length("Nm", strings.Repeat("a", 10000), 1, 0))
}

func TestMatchAnchorsPattern(t *testing.T) {
	ctry := constraint.MustPattern(`[A-Z]{2,2}`)

	require.NoError(t, constraint.Match("Ctry", "DE", ctry))

	for _, value := range []string{"de", "DEU", "xDEy", "DE "} {
		err := constraint.Match("Ctry", value, ctry)
		require.Equal(t, constraint.CodePatternMismatch, violationCode(t, err), "value %q", value)
		require.Contains(t, err.Error(), "Ctry does not match the required pattern")
	}
}

func TestMustPatternPanicsOnMalformedExpression(t *testing.T) {
	require.Panics(t, func() {
		constraint.MustPattern(`[A-Z{`)
	})
}

func TestPatternSourceRoundTrips(t *testing.T) {
	p := constraint.MustPattern(`[A-Z]{3,3}`)
	require.Equal(t, `[A-Z]{3,3}`, p.Source())
}

func TestMinimumInclusive(t *testing.T) {
	require.NoError(t, constraint.Minimum("Amt", 0, 0))
	require.NoError(t, constraint.Minimum("Amt", 0.01, 0))

	err := constraint.Minimum("Amt", -0.01, 0)
	require.Equal(t, constraint.CodeBelowMinimum, violationCode(t, err))
	require.Contains(t, err.Error(), "Amt is less than the minimum value of 0.000000")
}

func TestTextFacetsCheckOrder(t *testing.T) {
	facet := constraint.Text{
		MinLength: 1,
		MaxLength: 4,
		Pattern:   constraint.MustPattern(`[A-Z]{4,4}`),
	}

	// Length violations are reported before pattern violations.
	require.Equal(t, constraint.CodeTooShort, violationCode(t, facet.Check("Cd", "")))
	require.Equal(t, constraint.CodeTooLong, violationCode(t, facet.Check("Cd", "ABCDE")))
	require.Equal(t, constraint.CodePatternMismatch, violationCode(t, facet.Check("Cd", "abcd")))
	require.NoError(t, facet.Check("Cd", "ABCD"))
}

func TestFacetConformanceTable(t *testing.T) {
	cases := testsupport.LoadConstraintCases(t, filepath.Join("testdata", "facet_cases.yaml"))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			facet := constraint.Text{MinLength: tc.MinLength, MaxLength: tc.MaxLength}
			if tc.Pattern != "" {
				facet.Pattern = constraint.MustPattern(tc.Pattern)
			}

			err := facet.Check("value", tc.Value)
			require.Equal(t, tc.Code, violationCode(t, err))
		})
	}
}

type fakeItem struct {
	err error
}

func (f fakeItem) Validate() error {
	return f.err
}

func TestEachReturnsFirstFailure(t *testing.T) {
	first := constraint.NewError(constraint.CodeTooShort, "first")
	second := constraint.NewError(constraint.CodeTooLong, "second")

	require.NoError(t, constraint.Each([]fakeItem{}))
	require.NoError(t, constraint.Each([]fakeItem{{}, {}}))

	err := constraint.Each([]fakeItem{{}, {err: first}, {err: second}})
	require.Same(t, first, err)
}

func TestPopulated(t *testing.T) {
	require.Equal(t, 0, constraint.Populated())
	require.Equal(t, 0, constraint.Populated(false, false))
	require.Equal(t, 1, constraint.Populated(true, false))
	require.Equal(t, 2, constraint.Populated(true, true))
}

func TestValidateIsIdempotent(t *testing.T) {
	facet := constraint.Text{MinLength: 1, MaxLength: 2}

	for i := 0; i < 3; i++ {
		require.Equal(t, constraint.CodeTooLong, violationCode(t, facet.Check("Cd", "abc")))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, facet.Check("Cd", "ab"))
	}
}
