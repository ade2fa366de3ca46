// Package matrix_test contains unit tests for the Cramer kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eqsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDet2(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, 1},
		{"classroom", [][]float64{{2, 3}, {1, -1}}, -5},
		{"dependent", [][]float64{{1, 1}, {2, 2}}, 0},
		{"fractional", [][]float64{{0.5, 1.5}, {2, 4}}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows)
			got, err := matrix.Det2(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)

			// Interface fallback must agree with the fast path.
			got2, err := matrix.Det2(hide{m})
			require.NoError(t, err)
			assert.Equal(t, got, got2)
		})
	}
}

func TestDet2Errors(t *testing.T) {
	_, err := matrix.Det2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Det2(MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det2(MustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestWithColumnCramer checks the minors used by Cramer's rule on
// 2x + 3y = 5, x - y = 1.
func TestWithColumnCramer(t *testing.T) {
	a := MustRows(t, [][]float64{{2, 3}, {1, -1}})
	rhs := []float64{5, 1}

	ax, err := matrix.WithColumn(a, 0, rhs)
	require.NoError(t, err)
	ay, err := matrix.WithColumn(a, 1, rhs)
	require.NoError(t, err)

	dx, err := matrix.Det2(ax)
	require.NoError(t, err)
	dy, err := matrix.Det2(ay)
	require.NoError(t, err)

	assert.InDelta(t, -8.0, dx, 1e-12)
	assert.InDelta(t, -3.0, dy, 1e-12)

	// the source is untouched
	assert.Equal(t, 2.0, MustAt(t, a, 0, 0))
}

func TestWithColumnErrors(t *testing.T) {
	a := MustRows(t, [][]float64{{2, 3}, {1, -1}})

	_, err := matrix.WithColumn(nil, 0, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.WithColumn(a, 2, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.WithColumn(a, 0, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.WithColumn(a, 0, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{2, 3}, {1, -1}})
	x := []float64{1.6, 0.6}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 1}, y, 1e-12)

	y2, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
