package system_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/system"
)

var sinkS system.Solution

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkS = system.Solve(3, -2, 7, 1, 4, 2)
	}
}
