package system

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqsolve/equation"
	"github.com/katalvlaran/eqsolve/matrix"
)

// Solve classifies and solves
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// It never fails: any finite coefficients are admissible. Non-finite
// coefficients are reported in the trace and classified as None.
func Solve(a1, b1, c1, a2, b2, c2 float64) Solution {
	return SolveEquations(standard(a1, b1, c1), standard(a2, b2, c2))
}

// SolveEquations is Solve for two parsed equations. The equations' XFirst
// hints drive the display order of the standard-form trace section.
func SolveEquations(e1, e2 equation.Equation) Solution {
	sol := Solution{Trace: []Section{standardSection(e1, e2)}}

	coeffs, err := matrix.FromRows([][]float64{{e1.A, e1.B}, {e2.A, e2.B}})
	rhs := []float64{e1.C, e2.C}
	if err == nil {
		sol.D, sol.Dx, sol.Dy, err = determinants(coeffs, rhs)
	}
	if err != nil {
		sol.Kind = None
		sol.Trace = append(sol.Trace, Section{
			Title: titleResult,
			Lines: []string{"coefficients must be finite numbers: " + err.Error()},
		})

		return sol
	}

	sol.Trace = append(sol.Trace, matrixSection(e1, e2), determinantSection(e1, e2, sol))
	if !finite(sol.D, sol.Dx, sol.Dy) {
		return overflow(sol, "determinants")
	}

	switch {
	case math.Abs(sol.D) > ZeroDeterminant:
		sol.Kind = Unique
		sol.X = sol.Dx / sol.D
		sol.Y = sol.Dy / sol.D
		if !finite(sol.X, sol.Y) {
			return overflow(sol, "solution")
		}
		sol.Trace = append(sol.Trace, uniqueSection(sol))
		sol.Trace = append(sol.Trace, verify(coeffs, e1, e2, &sol))
	case math.Abs(sol.Dx) < ZeroDeterminant && math.Abs(sol.Dy) < ZeroDeterminant:
		sol.Kind = Infinite
		sol.Trace = append(sol.Trace, Section{Title: titleResult, Lines: []string{
			"D = 0 and Dx = 0, Dy = 0",
			"the system has infinitely many solutions (the two equations are equivalent)",
		}})
	default:
		sol.Kind = None
		sol.Trace = append(sol.Trace, Section{Title: titleResult, Lines: []string{
			"D = 0 but Dx ≠ 0 or Dy ≠ 0",
			"the system has no solution (the two equations contradict each other)",
		}})
	}

	return sol
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// overflow classifies sol as None after what left the float64 range. The
// numeric fields are zeroed so the solution stays encodable.
func overflow(sol Solution, what string) Solution {
	sol.Trace = append(sol.Trace, Section{Title: titleResult, Lines: []string{
		fmt.Sprintf("%s overflow the float64 range (D = %s, Dx = %s, Dy = %s)", what, num(sol.D), num(sol.Dx), num(sol.Dy)),
		"the system cannot be solved at this magnitude",
	}})
	sol.Kind = None
	sol.X, sol.Y, sol.D, sol.Dx, sol.Dy = 0, 0, 0, 0, 0

	return sol
}

// standard builds an Equation from raw coefficients with the same display
// hint the parser would have produced.
func standard(a, b, c float64) equation.Equation {
	return equation.Equation{A: a, B: b, C: c, XFirst: math.Abs(a) >= math.Abs(b)}
}

// determinants returns D, Dx and Dy through the matrix kernels: Dx and Dy
// are the determinants of A with column 0 (resp. 1) replaced by rhs.
func determinants(a matrix.Matrix, rhs []float64) (d, dx, dy float64, err error) {
	if d, err = matrix.Det2(a); err != nil {
		return 0, 0, 0, err
	}
	ax, err := matrix.WithColumn(a, 0, rhs)
	if err != nil {
		return 0, 0, 0, err
	}
	ay, err := matrix.WithColumn(a, 1, rhs)
	if err != nil {
		return 0, 0, 0, err
	}
	if dx, err = matrix.Det2(ax); err != nil {
		return 0, 0, 0, err
	}
	if dy, err = matrix.Det2(ay); err != nil {
		return 0, 0, 0, err
	}

	return d, dx, dy, nil
}

// verify substitutes (x, y) back into both equations, fills the residuals
// and the Verified flag, and returns the verification trace section.
func verify(coeffs matrix.Matrix, e1, e2 equation.Equation, sol *Solution) Section {
	sec := Section{Title: titleVerify}

	left, err := matrix.MatVec(coeffs, []float64{sol.X, sol.Y})
	if err != nil {
		sec.Lines = append(sec.Lines, "substitution failed: "+err.Error())

		return sec
	}

	for i, e := range []equation.Equation{e1, e2} {
		sol.Residuals[i] = left[i] - e.C
		sec.Lines = append(sec.Lines, fmt.Sprintf("equation %d: %s*%s + %s*%s = %s ≈ %.6f (right-hand side: %s)",
			i+1, num(e.A), num(sol.X), num(e.B), num(sol.Y), num(left[i]), e.C, num(e.C)))
	}
	sol.Verified = math.Abs(sol.Residuals[0]) < VerifyTolerance && math.Abs(sol.Residuals[1]) < VerifyTolerance
	if sol.Verified {
		sec.Lines = append(sec.Lines, "verified")
	} else {
		sec.Lines = append(sec.Lines, "verification failed, the result may carry rounding error")
	}

	return sec
}
