package system

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/equation"
)

// Section titles.
const (
	titleStandard    = "Standard form"
	titleMatrix      = "Coefficient matrix"
	titleDeterminant = "Determinants"
	titleResult      = "Result"
	titleVerify      = "Verification"
)

// num renders a value the way every trace line prints numbers.
func num(v float64) string { return equation.FormatNumber(v) }

func standardSection(e1, e2 equation.Equation) Section {
	return Section{Title: titleStandard, Lines: []string{
		"equation 1: " + e1.String(),
		"equation 2: " + e2.String(),
	}}
}

func matrixSection(e1, e2 equation.Equation) Section {
	return Section{Title: titleMatrix, Lines: []string{
		fmt.Sprintf("[ %6.2f  %6.2f ] [x]   [%6.2f]", e1.A, e1.B, e1.C),
		fmt.Sprintf("[ %6.2f  %6.2f ] [y] = [%6.2f]", e2.A, e2.B, e2.C),
	}}
}

func determinantSection(e1, e2 equation.Equation, s Solution) Section {
	return Section{Title: titleDeterminant, Lines: []string{
		fmt.Sprintf("D = a1*b2 - a2*b1 = (%s)*(%s) - (%s)*(%s) = %s",
			num(e1.A), num(e2.B), num(e2.A), num(e1.B), num(s.D)),
		fmt.Sprintf("Dx = c1*b2 - c2*b1 = (%s)*(%s) - (%s)*(%s) = %s",
			num(e1.C), num(e2.B), num(e2.C), num(e1.B), num(s.Dx)),
		fmt.Sprintf("Dy = a1*c2 - a2*c1 = (%s)*(%s) - (%s)*(%s) = %s",
			num(e1.A), num(e2.C), num(e2.A), num(e1.C), num(s.Dy)),
	}}
}

func uniqueSection(s Solution) Section {
	return Section{Title: titleResult, Lines: []string{
		fmt.Sprintf("D = %s ≠ 0, the system has a unique solution:", num(s.D)),
		fmt.Sprintf("x = Dx / D = %s / %s = %s", num(s.Dx), num(s.D), num(s.X)),
		fmt.Sprintf("y = Dy / D = %s / %s = %s", num(s.Dy), num(s.D), num(s.Y)),
		fmt.Sprintf("solution: x = %s, y = %s", num(s.X), num(s.Y)),
	}}
}
