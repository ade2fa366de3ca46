package equation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the equation text was blank.
	ErrEmptyInput = errors.New("equation: empty input")

	// ErrFormat indicates a structural problem: zero or several '=' signs,
	// or a side that is not a sequence of linear terms.
	ErrFormat = errors.New("equation: invalid format")

	// ErrNumericParse indicates a term's numeral could not convert to a float.
	ErrNumericParse = errors.New("equation: invalid number")
)

// parseErrorf wraps err with a tag, preserving the sentinel for errors.Is.
func parseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
