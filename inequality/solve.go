package inequality

import "math"

// Solve lists, in ascending order, the integers of the category's window
// that satisfy q. The result is never nil.
//
// Stage 1: reduce to a·x + b ▷ 0.
// Stage 2: |a| < Epsilon → the comparison b ▷ 0 decides the whole window.
// Stage 3: otherwise test every integer against the original two-sided
// form, keeping the rounding of the parsed terms.
//
// Complexity: O(window) ≤ 201 evaluations.
func Solve(q Inequality, c Category) []int32 {
	lo, hi := c.Range()
	out := make([]int32, 0, int(hi-lo)+1)

	a, b := q.Reduced()
	if math.Abs(a) < Epsilon {
		if !q.Op.Holds(b, 0) {
			return out
		}
		for x := lo; x <= hi; x++ {
			out = append(out, x)
		}

		return out
	}

	var fx float64
	for x := lo; x <= hi; x++ {
		fx = float64(x)
		if q.Op.Holds(q.LeftCoeff*fx+q.LeftConst, q.RightCoeff*fx+q.RightConst) {
			out = append(out, x)
		}
	}

	return out
}

// Label pairs each solution with its 1-based index.
func Label(solutions []int32) []Row {
	rows := make([]Row, len(solutions))
	for i, v := range solutions {
		rows[i] = Row{Index: i + 1, Value: v}
	}

	return rows
}
