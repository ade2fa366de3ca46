package inequality

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInequality splits text around its comparison operator and parses
// both sides with ParseExpression.
//
// The operator is the first token, in priority order >=, <=, !=, >, <,
// that occurs anywhere in the text.
//
// Errors: ErrEmptyInput, ErrNoOperator, ErrNumericParse (wrapped with the side).
func ParseInequality(text string) (Inequality, error) {
	if strings.TrimSpace(text) == "" {
		return Inequality{}, ErrEmptyInput
	}

	var (
		op  Op
		pos = -1
	)
	for _, candidate := range operatorPriority {
		if pos = strings.Index(text, candidate.String()); pos >= 0 {
			op = candidate
			break
		}
	}
	if pos < 0 {
		return Inequality{}, parseErrorf("ParseInequality", ErrNoOperator)
	}
	left, right := text[:pos], text[pos+len(op.String()):]

	q := Inequality{Op: op}
	var err error
	if q.LeftCoeff, q.LeftConst, err = ParseExpression(left); err != nil {
		return Inequality{}, parseErrorf("ParseInequality: left side", err)
	}
	if q.RightCoeff, q.RightConst, err = ParseExpression(right); err != nil {
		return Inequality{}, parseErrorf("ParseInequality: right side", err)
	}

	return q, nil
}

// MustParseInequality is like ParseInequality but panics on error.
func MustParseInequality(text string) Inequality {
	q, err := ParseInequality(text)
	if err != nil {
		panic(err)
	}

	return q
}

// ParseExpression reads a linear expression in x into (coeff, constant).
//
// Stage 1: remove whitespace; an empty expression is (0, 0).
// Stage 2: fold literal fractions in place (see foldFractions).
// Stage 3: prefix '+' when the text does not start with a sign.
// Stage 4: walk the signed terms; a term containing x/X contributes its
// prefix (empty ⇒ 1) to coeff, any other term is a constant.
func ParseExpression(text string) (coeff, constant float64, err error) {
	expr := stripSpace(text)
	if expr == "" {
		return 0, 0, nil
	}
	if expr, err = foldFractions(expr); err != nil {
		return 0, 0, err
	}
	if expr[0] != '+' && expr[0] != '-' {
		expr = "+" + expr
	}

	var (
		pos, end int
		sign     float64
		value    float64
		term     string
	)
	for pos < len(expr) {
		sign = 1
		if expr[pos] == '-' {
			sign = -1
		}
		pos++

		end = pos
		for end < len(expr) && expr[end] != '+' && expr[end] != '-' {
			end++
		}
		term = expr[pos:end]
		pos = end

		if xPos := strings.IndexAny(term, "xX"); xPos >= 0 {
			if rest := term[xPos+1:]; rest != "" {
				return 0, 0, fmt.Errorf("term %q: unexpected %q after x: %w", term, rest, ErrNumericParse)
			}
			value = 1
			if xPos > 0 {
				if value, err = parseNumber(term[:xPos]); err != nil {
					return 0, 0, err
				}
			}
			coeff += sign * value
			continue
		}
		if term == "" {
			continue
		}
		if value, err = parseNumber(term); err != nil {
			return 0, 0, err
		}
		constant += sign * value
	}

	return coeff, constant, nil
}

// foldFractions replaces every n/d with its decimal quotient, one slash at
// a time from the left. The numerator span runs back over digits, '.' and
// x/X; the denominator span runs forward over digits and '.'. A numerator
// ending in x keeps the x after the folded coefficient ("3x/4" → "0.75x").
// The quotient is printed with six decimals, trailing zeros trimmed.
func foldFractions(expr string) (string, error) {
	for {
		slash := strings.IndexByte(expr, '/')
		if slash < 0 {
			return expr, nil
		}

		numStart := slash
		for numStart > 0 && isNumeratorByte(expr[numStart-1]) {
			numStart--
		}
		denEnd := slash + 1
		for denEnd < len(expr) && isDenominatorByte(expr[denEnd]) {
			denEnd++
		}
		numText, denText := expr[numStart:slash], expr[slash+1:denEnd]
		if numText == "" || denText == "" {
			return "", fmt.Errorf("fraction at offset %d needs a numerator and a denominator: %w", slash, ErrNumericParse)
		}

		suffix := ""
		if last := numText[len(numText)-1]; last == 'x' || last == 'X' {
			suffix = string(last)
			numText = numText[:len(numText)-1]
		}
		if strings.ContainsAny(numText, "xX") {
			return "", fmt.Errorf("fraction numerator %q: %w", expr[numStart:slash], ErrNumericParse)
		}

		num := 1.0
		var err error
		if numText != "" {
			if num, err = parseNumber(numText); err != nil {
				return "", err
			}
		}
		den, err := parseNumber(denText)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("fraction %q divides by zero: %w", expr[numStart:denEnd], ErrNumericParse)
		}

		expr = expr[:numStart] + formatQuotient(num/den) + suffix + expr[denEnd:]
	}
}

// formatQuotient prints v with six decimals and trims trailing zeros and
// a trailing decimal point.
func formatQuotient(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}

// parseNumber converts a complete numeral to a finite float64.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("numeral %q: %w", s, ErrNumericParse)
	}

	return v, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isNumeratorByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == 'x' || b == 'X'
}

func isDenominatorByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}
