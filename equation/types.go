package equation

// Epsilon is the magnitude below which a coefficient is treated as zero.
// The same threshold decides whether a coefficient is ±1.
const Epsilon = 1e-10

// Equation is a parsed linear equation A·x + B·y = C.
//
// XFirst records whether x's coefficient dominates (|A| >= |B|); it only
// affects display order.
type Equation struct {
	A, B, C float64
	XFirst  bool
}
