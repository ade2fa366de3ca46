package equation_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/equation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		a, b, c float64
		xFirst  bool
	}{
		{"2x + 3y = 5", 2, 3, 5, false},
		{"x - y = 1", 1, -1, 1, true},
		{"5 = 2x + 3y", -2, -3, -5, false},
		{"3X - 2Y = 7", 3, -2, 7, true},
		{"x + 4y = 2", 1, 4, 2, false},
		{"-x + 2.5y - 1 = 3y + 4", -1, -0.5, 5, true},
		{"2x3y=6", 2, 3, 6, false},
		{"=x", -1, 0, 0, true},
		{"0x + 0y = 0", 0, 0, 0, true},
		{"\t y = .5 ", 0, 1, 0.5, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := equation.Parse(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.a, e.A, 1e-12, "a")
			assert.InDelta(t, tc.b, e.B, 1e-12, "b")
			assert.InDelta(t, tc.c, e.C, 1e-12, "c")
			assert.Equal(t, tc.xFirst, e.XFirst, "xFirst")
		})
	}
}

// TestParse_XFirstTie checks that equal magnitudes put x first.
func TestParse_XFirstTie(t *testing.T) {
	e := equation.MustParse("-3x + 3y = 0")
	assert.True(t, e.XFirst)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", equation.ErrEmptyInput},
		{"   ", equation.ErrEmptyInput},
		{"2x + 3y", equation.ErrFormat},
		{"x = y = 1", equation.ErrFormat},
		{"2z + y = 1", equation.ErrFormat},
		{"2*x = 4", equation.ErrFormat},
		{"2x + = 1", equation.ErrFormat},
		{"x = 1 -", equation.ErrFormat},
		{". + x = 1", equation.ErrNumericParse},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := equation.Parse(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseErrorNamesSide(t *testing.T) {
	_, err := equation.Parse("x = 2q")
	require.ErrorIs(t, err, equation.ErrFormat)
	assert.Contains(t, err.Error(), "right side")
	assert.Contains(t, err.Error(), `'q'`)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { equation.MustParse("no equals here") })
}
