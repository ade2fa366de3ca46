package inequality

import (
	"fmt"
	"math"
	"strconv"
)

// formatNumber prints v with up to six significant digits.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatSide renders coeff·x + constant as "2x + 3", "-x", "x - 1.5" or "7".
func formatSide(coeff, constant float64) string {
	if math.Abs(coeff) <= Epsilon {
		return formatNumber(constant)
	}

	var s string
	switch {
	case math.Abs(coeff-1) < Epsilon:
		s = "x"
	case math.Abs(coeff+1) < Epsilon:
		s = "-x"
	default:
		s = formatNumber(coeff) + "x"
	}
	switch {
	case constant > 0:
		s += " + " + formatNumber(constant)
	case constant < 0:
		s += " - " + formatNumber(-constant)
	}

	return s
}

// StandardForm renders the parsed inequality as "(2x + 3) > (5x - 2)".
func (q Inequality) StandardForm() string {
	return "(" + formatSide(q.LeftCoeff, q.LeftConst) + ") " + q.Op.String() +
		" (" + formatSide(q.RightCoeff, q.RightConst) + ")"
}

// ReducedForm renders a·x + b  op  0, e.g. "-3x + 5 > 0".
func (q Inequality) ReducedForm() string {
	a, b := q.Reduced()

	return formatSide(a, b) + " " + q.Op.String() + " 0"
}

// String is StandardForm.
func (q Inequality) String() string { return q.StandardForm() }

// Describe summarises a result list: "12 positive integer solutions" or
// "no integer solution in [-100, 100]".
func Describe(c Category, n int) string {
	switch n {
	case 0:
		lo, hi := c.Range()
		return fmt.Sprintf("no %s solution in [%d, %d]", c.Label(), lo, hi)
	case 1:
		return fmt.Sprintf("1 %s solution", c.Label())
	}

	return fmt.Sprintf("%d %s solutions", n, c.Label())
}
