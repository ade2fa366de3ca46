package system_test

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/equation"
	"github.com/katalvlaran/eqsolve/system"
)

// ExampleSolveEquations solves the classroom system 3x - 2y = 7, x + 4y = 2.
func ExampleSolveEquations() {
	e1 := equation.MustParse("3x - 2y = 7")
	e2 := equation.MustParse("x + 4y = 2")

	sol := system.SolveEquations(e1, e2)
	fmt.Println(sol.Kind, sol.Verified)
	fmt.Printf("x=%.4f y=%.4f\n", sol.X, sol.Y)
	// Output:
	// unique true
	// x=2.2857 y=-0.0714
}
