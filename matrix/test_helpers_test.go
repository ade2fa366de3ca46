package matrix_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/matrix"
	"github.com/stretchr/testify/require"
)

// MustAt reads m(i,j) and fails the test on error.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRows builds a Dense from rows and fails the test on error.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// hide wraps a Matrix so the concrete *Dense type is not visible,
// forcing kernels onto their interface fallback paths.
type hide struct{ matrix.Matrix }
