// Package equation parses two-variable linear equations typed as free text
// into the normal form a·x + b·y = c.
//
// What it accepts:
//
//	"2x + 3y = 5"     → a=2, b=3, c=5
//	"5 = 2x + 3y"     → a=-2, b=-3, c=-5
//	"x - y + 2 = 3y"  → a=1, b=-4, c=-2
//
// Whitespace is ignored and letters are case-insensitive. Every side is a
// sequence of signed terms `[sign][digits[.digits]][x|y]`; a missing numeral
// means magnitude 1. All terms are moved to the left-hand side and the
// constant to the right.
//
// Errors (match with errors.Is):
//   - ErrEmptyInput    — blank text.
//   - ErrFormat        — missing or duplicate '=', unknown character, dangling sign.
//   - ErrNumericParse  — a numeral such as "." that does not convert.
//
// Formatting helpers (FormatCoefficient, FormatNumber, Equation.String)
// render the standardised form used in solver traces.
package equation
