package inequality

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the inequality text was blank.
	ErrEmptyInput = errors.New("inequality: empty input")

	// ErrNoOperator indicates none of >=, <=, !=, >, < occurs in the text.
	ErrNoOperator = errors.New("inequality: no comparison operator")

	// ErrNumericParse indicates a numeral (or fraction) could not convert
	// to a finite float.
	ErrNumericParse = errors.New("inequality: invalid number")

	// ErrUnknownCategory is returned by ParseCategory for unrecognised names.
	ErrUnknownCategory = errors.New("inequality: unknown category")
)

// parseErrorf wraps err with a tag, preserving the sentinel for errors.Is.
func parseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
