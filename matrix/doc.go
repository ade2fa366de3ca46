// Package matrix offers the small dense linear-algebra layer used by the
// equation-system solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-value policy (NaN/±Inf are rejected on Set).
//   - Validators returning plain sentinels (ErrNilMatrix, ErrNonSquare, ...).
//   - Kernels for the 2×2 Cramer workflow: Det2, WithColumn (replace one
//     column by the constant vector) and MatVec (re-substitution).
//
// Matrices here are tiny (2×2 coefficient matrices, 2×3 augmented
// matrices), so every kernel favours determinism and clear errors over
// blocked or vectorised loops.
//
//	A, _ := matrix.FromRows([][]float64{{2, 3}, {1, -1}})
//	D, _ := matrix.Det2(A)                         // -5
//	Ax, _ := matrix.WithColumn(A, 0, []float64{5, 1})
//	Dx, _ := matrix.Det2(Ax)                       // -8
package matrix
