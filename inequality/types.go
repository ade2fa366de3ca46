package inequality

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the magnitude below which a coefficient (or a difference, for
// !=) is treated as zero.
const Epsilon = 1e-10

// Scan window bounds. Fixed by design; not configurable.
const (
	MinSolution int32 = -100
	MaxSolution int32 = 100
)

// Op is a comparison operator.
type Op int

const (
	GT Op = iota // >
	LT           // <
	GE           // >=
	LE           // <=
	NE           // !=
)

// operatorPriority is the order in which tokens are searched for, longer
// tokens first so ">" is never matched inside ">=".
var operatorPriority = []Op{GE, LE, NE, GT, LT}

// String returns the operator token.
func (o Op) String() string {
	switch o {
	case GT:
		return ">"
	case LT:
		return "<"
	case GE:
		return ">="
	case LE:
		return "<="
	case NE:
		return "!="
	}

	return "?"
}

// MarshalText lets encoders print the operator token.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Holds reports whether l o r. For NE the values must differ by more
// than Epsilon.
func (o Op) Holds(l, r float64) bool {
	switch o {
	case GT:
		return l > r
	case LT:
		return l < r
	case GE:
		return l >= r
	case LE:
		return l <= r
	case NE:
		return math.Abs(l-r) > Epsilon
	}

	return false
}

// Category selects which integers are scanned.
type Category int

const (
	All Category = iota
	Positive
	Negative
)

// Range returns the inclusive scan window for the category. Unknown values
// scan the full window.
func (c Category) Range() (lo, hi int32) {
	switch c {
	case Positive:
		return 1, MaxSolution
	case Negative:
		return MinSolution, -1
	}

	return MinSolution, MaxSolution
}

// String returns "all", "positive" or "negative".
func (c Category) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}

	return "all"
}

// Label names the kind of number a category asks for.
func (c Category) Label() string {
	switch c {
	case Positive:
		return "positive integer"
	case Negative:
		return "negative integer"
	}

	return "integer"
}

// MarshalText lets encoders print the category by name.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts the names understood by ParseCategory.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// ParseCategory maps a name to a Category. Matching is case-insensitive;
// "pos"/"neg" and the empty string (All) are accepted.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return All, nil
	case "positive", "pos":
		return Positive, nil
	case "negative", "neg":
		return Negative, nil
	}

	return All, fmt.Errorf("%q: %w", s, ErrUnknownCategory)
}

// Inequality is LeftCoeff·x + LeftConst  Op  RightCoeff·x + RightConst.
type Inequality struct {
	LeftCoeff  float64 `json:"left_coeff"`
	LeftConst  float64 `json:"left_const"`
	RightCoeff float64 `json:"right_coeff"`
	RightConst float64 `json:"right_const"`
	Op         Op      `json:"op"`
}

// Reduced returns (a, b) of the equivalent form a·x + b  Op  0.
func (q Inequality) Reduced() (a, b float64) {
	return q.LeftCoeff - q.RightCoeff, q.LeftConst - q.RightConst
}

// Row pairs a solution with its 1-based position in the result list.
type Row struct {
	Index int   `json:"index"`
	Value int32 `json:"value"`
}
