// Package inequality parses single-variable linear inequalities and lists
// their integer solutions inside a fixed window.
//
// 🚀 Input
//
//	"2x + 3 > 5x - 2"   "x < 10"   "3x - 4 >= 2x + 1"   "2x != 8"   "x/2 - 3 <= 5"
//
// Supported operators, matched in this priority order: >=, <=, !=, >, <.
// Each side is a sum of signed terms, either a constant or a coefficient
// followed by x/X. Literal fractions n/d are folded to decimals before
// the terms are read (x/2 becomes 0.5x).
//
// ✨ Solving
//
// The inequality is reduced to a·x + b ▷ 0. If a is (numerically) zero
// the comparison b ▷ 0 decides the whole window at once. Otherwise every
// integer in the window is checked against the original two-sided form,
// in ascending order. The window depends on the Category:
//
//	Positive → [1, 100]   Negative → [-100, -1]   All → [-100, 100]
//
// The bounds are a product constraint; the scan is exhaustive on purpose.
//
// ⚙️ Usage:
//
//	ineq, err := inequality.ParseInequality("3x - 4 >= 2x + 1")
//	if err != nil {
//	  // ErrEmptyInput, ErrNoOperator or ErrNumericParse
//	}
//	xs := inequality.Solve(ineq, inequality.Positive) // 5..100
//	rows := inequality.Label(xs)                      // {1 5} {2 6} ...
package inequality
