package equation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts text such as "2x + 3y = 5" into an Equation.
//
// Stage 1: strip whitespace and lowercase.
// Stage 2: require exactly one '=' and split into left/right.
// Stage 3: scan each side into x, y and constant accumulators.
// Stage 4: move everything to the left, the constant to the right.
//
// A sign must be followed by a numeral or a variable: a dangling sign such
// as "x = 1 -" is ErrFormat rather than a ±1 constant.
//
// Errors: ErrEmptyInput, ErrFormat, ErrNumericParse (wrapped with the side).
func Parse(text string) (Equation, error) {
	eq := normalize(text)
	if eq == "" {
		return Equation{}, ErrEmptyInput
	}

	switch n := strings.Count(eq, "="); {
	case n == 0:
		return Equation{}, parseErrorf("Parse", fmt.Errorf("missing '=': %w", ErrFormat))
	case n > 1:
		return Equation{}, parseErrorf("Parse", fmt.Errorf("%d '=' signs: %w", n, ErrFormat))
	}
	left, right, _ := strings.Cut(eq, "=")

	lx, ly, lc, err := scanSide(left)
	if err != nil {
		return Equation{}, parseErrorf("Parse: left side", err)
	}
	rx, ry, rc, err := scanSide(right)
	if err != nil {
		return Equation{}, parseErrorf("Parse: right side", err)
	}

	e := Equation{
		A: lx - rx,
		B: ly - ry,
		C: rc - lc,
	}
	e.XFirst = math.Abs(e.A) >= math.Abs(e.B)

	return e, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// static example tables.
func MustParse(text string) Equation {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return e
}

// normalize removes all whitespace and lowercases the text.
func normalize(text string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))
}

// scanSide walks the signed terms of one side of an equation.
// A term is [sign][digits[.digits]][x|y]; the sign of every term after the
// first is optional, so "2x3y" reads as 2x + 3y.
func scanSide(side string) (x, y, c float64, err error) {
	if side == "" {
		return 0, 0, 0, nil
	}
	shift := 0 // offsets reported against the caller's text
	if side[0] != '+' && side[0] != '-' {
		side = "+" + side
		shift = 1
	}

	var (
		pos  int
		sign float64
		mag  float64
	)
	for pos < len(side) {
		start := pos
		sign = 1
		if side[pos] == '+' || side[pos] == '-' {
			if side[pos] == '-' {
				sign = -1
			}
			pos++
		}

		numStart := pos
		for pos < len(side) && isDigit(side[pos]) {
			pos++
		}
		if pos < len(side) && side[pos] == '.' {
			pos++
			for pos < len(side) && isDigit(side[pos]) {
				pos++
			}
		}
		numeral := side[numStart:pos]

		var variable byte
		if pos < len(side) && (side[pos] == 'x' || side[pos] == 'y') {
			variable = side[pos]
			pos++
		}

		if numeral == "" && variable == 0 {
			if pos < len(side) {
				return 0, 0, 0, fmt.Errorf("unexpected %q at offset %d: %w", side[pos], pos-shift, ErrFormat)
			}
			return 0, 0, 0, fmt.Errorf("dangling sign at offset %d: %w", start-shift, ErrFormat)
		}

		mag = 1
		if numeral != "" {
			if mag, err = strconv.ParseFloat(numeral, 64); err != nil {
				return 0, 0, 0, fmt.Errorf("numeral %q: %w", numeral, ErrNumericParse)
			}
		}

		switch variable {
		case 'x':
			x += sign * mag
		case 'y':
			y += sign * mag
		default:
			c += sign * mag
		}
	}

	return x, y, c, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
