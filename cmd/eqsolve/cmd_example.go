package main

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/examples"
	"github.com/katalvlaran/eqsolve/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) exampleCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "example system|inequality",
		Short: "Solve one of the built-in (or configured) examples",
		Long: `Solve a canned example. Examples rotate: the report names the index to
pass with --index to get the following one, wrapping after the last.`,
		Example: `  eqsolve example system
  eqsolve example inequality --index 6`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(examples.System), string(examples.Inequality)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := examples.ParseKind(args[0])
			if err != nil {
				return &inputError{err}
			}
			return a.runExample(kind, index)
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "zero-based example index")

	return cmd
}

func (a *app) runExample(kind examples.Kind, index int) error {
	n := a.catalog.Len(kind)
	text, next, err := a.catalog.Next(kind, index)
	if err != nil {
		return err
	}
	a.logger.Debug("example selected", zap.String("kind", string(kind)), zap.Int("index", index), zap.Int("next", next))

	if a.renderer.Options().Format == render.Text {
		fmt.Fprintf(a.stdout, "example %d/%d: %s (next: --index %d)\n\n", (next+n-1)%n+1, n, text, next)
	}

	if kind == examples.System {
		pair, _ := a.catalog.NextSystem(index)
		return a.solveSystem(pair[0], pair[1])
	}

	return a.solveInequality(text, a.cfg.Category())
}
