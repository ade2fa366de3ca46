package system_test

import (
	"testing"

	"github.com/katalvlaran/eqsolve/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_Unique(t *testing.T) {
	sol := system.Solve(2, 3, 5, 1, -1, 1)

	titles := make([]string, 0, len(sol.Trace))
	for _, sec := range sol.Trace {
		titles = append(titles, sec.Title)
	}
	assert.Equal(t, []string{"Standard form", "Coefficient matrix", "Determinants", "Result", "Verification"}, titles)

	assert.Equal(t, []string{"equation 1: 3y + 2x = 5", "equation 2: x - y = 1"}, sol.Trace[0].Lines)
	assert.Equal(t, []string{
		"[   2.00    3.00 ] [x]   [  5.00]",
		"[   1.00   -1.00 ] [y] = [  1.00]",
	}, sol.Trace[1].Lines)
	assert.Equal(t, []string{
		"D = a1*b2 - a2*b1 = (2)*(-1) - (1)*(3) = -5",
		"Dx = c1*b2 - c2*b1 = (5)*(-1) - (1)*(3) = -8",
		"Dy = a1*c2 - a2*c1 = (2)*(1) - (1)*(5) = -3",
	}, sol.Trace[2].Lines)
	assert.Contains(t, sol.Trace[3].Lines, "x = Dx / D = -8 / -5 = 1.6")
	assert.Contains(t, sol.Trace[3].Lines, "solution: x = 1.6, y = 0.6")
	assert.Equal(t, "verified", sol.Trace[4].Lines[len(sol.Trace[4].Lines)-1])
}

func TestTrace_Infinite(t *testing.T) {
	sol := system.Solve(1, 1, 2, 2, 2, 4)
	require.Len(t, sol.Trace, 4)
	assert.Equal(t, "Result", sol.Trace[3].Title)
	assert.Contains(t, sol.Trace[3].Lines[1], "infinitely many")
}

func TestLines(t *testing.T) {
	sol := system.Solve(1, 1, 2, 1, 1, 3)
	lines := sol.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "=== Standard form ===", lines[0])
	assert.Contains(t, lines, "")
	assert.Contains(t, lines, "=== Result ===")
	assert.Contains(t, lines, "the system has no solution (the two equations contradict each other)")
}
