package system

import "github.com/katalvlaran/eqsolve/matrix"

// Tolerances shared by the solver.
const (
	// ZeroDeterminant is the magnitude below which D, Dx or Dy count as zero.
	ZeroDeterminant = matrix.ZeroTolerance

	// VerifyTolerance bounds the residual |a·x + b·y - c| of a verified solution.
	VerifyTolerance = 1e-4
)

// Kind classifies the solution set of a 2×2 system.
type Kind int

const (
	// Unique means exactly one (x, y) satisfies both equations.
	Unique Kind = iota

	// Infinite means the equations are linearly dependent and consistent.
	Infinite

	// None means the equations contradict each other.
	None
)

// String returns "unique", "infinite" or "none".
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case None:
		return "none"
	}

	return "unknown"
}

// MarshalText lets encoders print the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Section is one titled block of explanatory trace lines.
type Section struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Solution is the outcome of solving a 2×2 linear system.
//
// X, Y, Residuals and Verified are meaningful only when Kind == Unique.
type Solution struct {
	Kind      Kind       `json:"kind"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	D         float64    `json:"d"`
	Dx        float64    `json:"dx"`
	Dy        float64    `json:"dy"`
	Residuals [2]float64 `json:"residuals"`
	Verified  bool       `json:"verified"`
	Trace     []Section  `json:"trace"`
}

// Lines flattens the trace into printable lines, one blank line between
// sections and each section introduced by "=== Title ===".
func (s Solution) Lines() []string {
	out := make([]string, 0, 32)
	for i, sec := range s.Trace {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, "=== "+sec.Title+" ===")
		out = append(out, sec.Lines...)
	}

	return out
}
