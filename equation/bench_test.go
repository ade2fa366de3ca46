package equation_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/equation"
)

var sinkE equation.Equation

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e, err := equation.Parse("-x + 2.5y - 1 = 3y + 4")
		if err != nil {
			b.Fatal(err)
		}
		sinkE = e
	}
}
