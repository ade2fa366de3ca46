package equation_test

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/equation"
)

func ExampleParse() {
	e, err := equation.Parse("5 = 2x + 3y - y")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("a=%g b=%g c=%g\n", e.A, e.B, e.C)
	fmt.Println(e)
	// Output:
	// a=-2 b=-2 c=-5
	// -2x - 2y = -5
}
