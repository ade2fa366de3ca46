// Package system solves a pair of two-variable linear equations with
// Cramer's rule and explains every step.
//
// 🚀 Algorithm
//
//	D  = a1*b2 - a2*b1
//	Dx = c1*b2 - c2*b1
//	Dy = a1*c2 - a2*c1
//
//	|D| > 1e-10             → Unique   x = Dx/D, y = Dy/D
//	|Dx|, |Dy| < 1e-10      → Infinite (the equations are equivalent)
//	otherwise               → None     (the equations contradict)
//
// A unique solution is substituted back into both equations; the
// Verified flag reports whether both residuals stay below 1e-4. A failed
// check is part of the result, never an error.
//
// ✨ Trace
//
// The tool is pedagogical: Solution.Trace carries the standard form, the
// coefficient matrix, the three determinant formulas with the values
// substituted, the classification and the substitution check, ready for
// a host to render.
//
// ⚙️ Usage:
//
//	e1, _ := equation.Parse("2x + 3y = 5")
//	e2, _ := equation.Parse("x - y = 1")
//	sol := system.SolveEquations(e1, e2)
//	fmt.Println(sol.Kind, sol.X, sol.Y) // unique 1.6 0.6
package system
