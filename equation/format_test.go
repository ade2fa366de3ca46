package equation_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/equation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoefficient(t *testing.T) {
	cases := []struct {
		v       float64
		leading bool
		want    string
	}{
		{0, true, "0"},
		{1e-12, false, "0"},
		{1, true, ""},
		{-1, true, "-"},
		{2.5, true, "2.5"},
		{-3, true, "-3"},
		{1, false, " + "},
		{-1, false, " - "},
		{2.5, false, " + 2.5"},
		{-3, false, " - 3"},
		{1 / 3.0, true, "0.333333"},
	}
	for _, tc := range cases {
		got := equation.FormatCoefficient(tc.v, tc.leading)
		assert.Equal(t, tc.want, got, "FormatCoefficient(%v, %v)", tc.v, tc.leading)
	}
}

// TestFormatCoefficientStable re-parses the rendered coefficient and checks
// that formatting it again yields the same text.
func TestFormatCoefficientStable(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 2.5, -3} {
		lead := equation.FormatCoefficient(v, true)
		e, err := equation.Parse(lead + "x = 0")
		require.NoError(t, err)
		assert.Equal(t, lead, equation.FormatCoefficient(e.A, true), "leading %v", v)

		tail := equation.FormatCoefficient(v, false)
		e, err = equation.Parse("x" + tail + "y = 0")
		require.NoError(t, err)
		assert.Equal(t, tail, equation.FormatCoefficient(e.B, false), "non-leading %v", v)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.6", equation.FormatNumber(1.6))
	assert.Equal(t, "0", equation.FormatNumber(-0.0*1))
	assert.Equal(t, "-5", equation.FormatNumber(-5))
	assert.Equal(t, "1e+06", equation.FormatNumber(1e6))
}

func TestEquationString(t *testing.T) {
	cases := map[string]string{
		"2x + 3y = 5":  "3y + 2x = 5",
		"x - y = 1":    "x - y = 1",
		"3x - 2y = 7":  "3x - 2y = 7",
		"5 = 2x":       "-2x + 0y = -5",
		"y = 4":        "y + 0x = 4",
		"-x - 4y = -2": "-4y - x = -2",
	}
	for in, want := range cases {
		assert.Equal(t, want, equation.MustParse(in).String(), in)
	}
}
