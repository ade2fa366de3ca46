// SPDX-License-Identifier: MIT
// Package matrix provides the kernels behind Cramer's rule: the 2×2
// determinant, column replacement and matrix-vector products. All
// functions perform strict fail-fast validation and never mutate inputs.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// ZeroTolerance is the magnitude below which a determinant is treated as
// exactly zero by callers classifying a system.
const ZeroTolerance = 1e-10

// Operation name constants for unified error wrapping.
const (
	opDet2       = "Det2"
	opWithColumn = "WithColumn"
	opMatVec     = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Det2 returns the determinant m00*m11 - m10*m01 of a 2×2 matrix.
//
// The product order matches the textbook form D = a1*b2 - a2*b1 so the
// value is bit-identical to the formula shown in solver traces.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (not 2×2).
//
// Complexity: O(1).
func Det2(m Matrix) (float64, error) {
	if err := ValidateSquareOf(m, 2); err != nil {
		return 0, matrixErrorf(opDet2, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.data[0]*d.data[3] - d.data[2]*d.data[1], nil
	}

	// Fallback: interface reads; shape already validated.
	a, _ := m.At(0, 0)
	b, _ := m.At(0, 1)
	c, _ := m.At(1, 0)
	e, _ := m.At(1, 1)

	return a*e - c*b, nil
}

// WithColumn returns a copy of m whose column col is replaced by v.
// In Cramer's rule this yields the minor matrices A_x and A_y.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (col), ErrDimensionMismatch / ErrNaNInf (v).
//
// Complexity: O(r*c) for the copy.
func WithColumn(m Matrix, col int, v []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}
	if col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opWithColumn, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}

	out := m.Clone()
	var i int
	for i = 0; i < out.Rows(); i++ {
		if err := out.Set(i, col, v[i]); err != nil {
			return nil, matrixErrorf(opWithColumn, err)
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
