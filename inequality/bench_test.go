package inequality_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/inequality"
)

var sinkXs []int32

func BenchmarkParseInequality(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := inequality.ParseInequality("2/3x + 1/4 >= x/2 - 3"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveAll(b *testing.B) {
	q := inequality.MustParseInequality("2x != 8")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkXs = inequality.Solve(q, inequality.All)
	}
}
