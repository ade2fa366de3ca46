package equation

import (
	"math"
	"strconv"
)

// FormatNumber renders v with up to six significant digits, the way the
// solver traces print intermediate values ("1.6", "-0.333333", "1e+06").
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatCoefficient renders a coefficient for display in front of a variable.
//
//   - |v| < Epsilon          → "0"
//   - leading, v ≈ 1 / ≈ -1  → "" / "-"
//   - leading otherwise      → the numeral
//   - non-leading ≈ ±1       → " + " / " - "
//   - non-leading otherwise  → " + n" / " - |n|"
func FormatCoefficient(v float64, leading bool) string {
	if math.Abs(v) < Epsilon {
		return "0"
	}
	if leading {
		switch {
		case math.Abs(v-1) < Epsilon:
			return ""
		case math.Abs(v+1) < Epsilon:
			return "-"
		}
		return FormatNumber(v)
	}

	switch {
	case math.Abs(v-1) < Epsilon:
		return " + "
	case math.Abs(v+1) < Epsilon:
		return " - "
	case v > 0:
		return " + " + FormatNumber(v)
	}

	return " - " + FormatNumber(-v)
}

// String renders the standardised form, dominant variable first:
// "2x + 3y = 5" or "-4y + x = 2".
func (e Equation) String() string {
	lead, leadVar, rest, restVar := e.A, "x", e.B, "y"
	if !e.XFirst {
		lead, leadVar, rest, restVar = e.B, "y", e.A, "x"
	}
	tail := FormatCoefficient(rest, false)
	if tail == "0" {
		tail = " + 0"
	}

	return FormatCoefficient(lead, true) + leadVar + tail + restVar + " = " + FormatNumber(e.C)
}
