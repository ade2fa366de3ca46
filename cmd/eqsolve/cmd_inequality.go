package main

import (
	"github.com/katalvlaran/eqsolve/inequality"
	"github.com/katalvlaran/eqsolve/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const inequalityHelp = `Solve a linear inequality in x over the integers of [-100, 100].

Supported operators: >  <  >=  <=  !=
Literal fractions such as 1/4 or x/2 are folded to decimals before solving.

Categories (--category):
  positive   integers 1..100
  negative   integers -100..-1
  all        integers -100..100 (default, see inequality.default_category)

The solutions are listed in ascending order, each with its 1-based index.
When the x terms cancel, the remaining comparison decides the whole range.`

func (a *app) inequalityCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "inequality INEQUALITY",
		Aliases: []string{"ineq"},
		Short:   "Solve a one-variable linear inequality over bounded integers",
		Long:    inequalityHelp,
		Example: `  eqsolve inequality "2x + 3 > 5x - 2"
  eqsolve inequality "x/2 - 3 <= 5" --category positive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Category()
			if cmd.Flags().Changed("category") {
				var err error
				if c, err = inequality.ParseCategory(category); err != nil {
					return &inputError{err}
				}
			}
			return a.solveInequality(args[0], c)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "k", "", "positive, negative or all")

	return cmd
}

func (a *app) solveInequality(text string, c inequality.Category) error {
	q, err := inequality.ParseInequality(text)
	if err != nil {
		a.logger.Debug("parse failed", zap.String("input", text), zap.Error(err))
		return &inputError{err}
	}

	xs := inequality.Solve(q, c)
	a.logger.Debug("inequality solved",
		zap.String("standard", q.StandardForm()),
		zap.Stringer("category", c),
		zap.Int("solutions", len(xs)))

	return a.renderer.Inequality(render.NewInequalityReport(q, c, xs))
}
