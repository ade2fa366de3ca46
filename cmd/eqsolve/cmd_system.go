package main

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/equation"
	"github.com/katalvlaran/eqsolve/render"
	"github.com/katalvlaran/eqsolve/system"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) systemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system EQUATION1 EQUATION2",
		Short: "Solve two linear equations in x and y with Cramer's rule",
		Long: `Solve a system of two linear equations in x and y.

Each equation has exactly one '=' and terms of the form [sign][number][x|y],
for example "2x + 3y = 5" or "5 = 2x + 3y - y". Spaces and case are ignored.
The report shows the standard form, the coefficient matrix, the
determinants D, Dx and Dy, the result and a substitution check.`,
		Example: `  eqsolve system "2x + 3y = 5" "x - y = 1"
  eqsolve system "3x - 2y = 7" "x + 4y = 2" -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveSystem(args[0], args[1])
		},
	}
}

func (a *app) solveSystem(s1, s2 string) error {
	e1, err := equation.Parse(s1)
	if err != nil {
		a.logger.Debug("parse failed", zap.String("input", s1), zap.Error(err))
		return &inputError{fmt.Errorf("equation 1: %w", err)}
	}
	e2, err := equation.Parse(s2)
	if err != nil {
		a.logger.Debug("parse failed", zap.String("input", s2), zap.Error(err))
		return &inputError{fmt.Errorf("equation 2: %w", err)}
	}

	sol := system.SolveEquations(e1, e2)
	a.logger.Debug("system solved",
		zap.Stringer("kind", sol.Kind),
		zap.Float64("d", sol.D),
		zap.Bool("verified", sol.Verified))

	return a.renderer.System(render.NewSystemReport(e1, e2, sol))
}
