// Package eqsolve parses small algebraic statements and solves them while
// explaining every step.
//
// What is in the module?
//
//	equation/   — parser for "2x + 3y = 5" into A·x + B·y = C, coefficient formatting
//	system/     — 2×2 linear systems by Cramer's rule with a step trace and a substitution check
//	inequality/ — parser and bounded integer solver for "3x - 4 >= 2x + 1"
//	matrix/     — dense float64 matrices, validators, 2×2 determinant, column replacement
//	examples/   — canned statements with caller-held rotation
//	render/     — text (lipgloss) and JSON output of results
//	config/     — YAML settings with EQSOLVE_* environment overrides
//	batch/      — parallel solving of YAML job files
//	cmd/eqsolve — the command-line tool
//
// The solver packages are pure and synchronous: no logging, no globals,
// safe for concurrent use. Parse functions return wrapped sentinel errors
// (match them with errors.Is); Solve functions never fail.
//
// Quick start:
//
//	e1, _ := equation.Parse("2x + 3y = 5")
//	e2, _ := equation.Parse("x - y = 1")
//	sol := system.SolveEquations(e1, e2) // Unique, x = 1.6, y = 0.6
//
//	q, _ := inequality.ParseInequality("x/2 - 3 <= 5")
//	xs := inequality.Solve(q, inequality.Positive) // 1..16
package eqsolve
