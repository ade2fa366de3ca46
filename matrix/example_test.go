package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/matrix"
)

// ExampleDet2 solves 2x + 3y = 5, x - y = 1 with Cramer's rule.
func ExampleDet2() {
	a, _ := matrix.FromRows([][]float64{{2, 3}, {1, -1}})
	rhs := []float64{5, 1}

	ax, _ := matrix.WithColumn(a, 0, rhs)
	ay, _ := matrix.WithColumn(a, 1, rhs)

	d, _ := matrix.Det2(a)
	dx, _ := matrix.Det2(ax)
	dy, _ := matrix.Det2(ay)

	fmt.Printf("D=%g Dx=%g Dy=%g\n", d, dx, dy)
	fmt.Printf("x=%g y=%g\n", dx/d, dy/d)
	// Output:
	// D=-5 Dx=-8 Dy=-3
	// x=1.6 y=0.6
}
