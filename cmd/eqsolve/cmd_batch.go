package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/eqsolve/batch"
	"github.com/katalvlaran/eqsolve/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errJobsFailed = errors.New("some batch jobs failed")

func (a *app) batchCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every job of a YAML batch file in parallel",
		Long: `Solve the jobs listed in a YAML batch file:

  jobs:
    - name: classroom-1
      system: ["2x + 3y = 5", "x - y = 1"]
    - name: bound
      inequality: "x/2 - 3 <= 5"
      category: positive

Results keep the order of the file. Each job gets a UUID. The command exits
non-zero when any job fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("concurrency") {
				a.cfg.Batch.Concurrency = concurrency
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.runBatch(ctx, args[0])
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", batch.DefaultConcurrency, "jobs solved at once")

	return cmd
}

func (a *app) runBatch(ctx context.Context, path string) error {
	f, err := batch.Load(path)
	if err != nil {
		return &inputError{err}
	}
	a.logger.Info("batch started", zap.String("path", path), zap.Int("jobs", len(f.Jobs)), zap.Int("concurrency", a.cfg.Batch.Concurrency))

	runner := batch.NewRunner(a.logger,
		batch.WithConcurrency(a.cfg.Batch.Concurrency),
		batch.WithDefaultCategory(a.cfg.Category()))
	results, err := runner.Run(ctx, f.Jobs)
	if err != nil {
		return err
	}

	if err := a.printBatch(results); err != nil {
		return err
	}
	for _, res := range results {
		if res.Failed() {
			return errJobsFailed
		}
	}

	return nil
}

func (a *app) printBatch(results []batch.Result) error {
	if a.renderer.Options().Format == render.JSON {
		return a.renderer.JSON(results)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		fmt.Fprintf(a.stdout, "### %s [%s] %s\n", res.Name, res.Kind, res.ID)
		var err error
		switch {
		case res.Failed():
			err = a.renderer.Error(errors.New(res.Error))
		case res.System != nil:
			err = a.renderer.System(*res.System)
		case res.Inequality != nil:
			err = a.renderer.Inequality(*res.Inequality)
		}
		if err != nil {
			return fmt.Errorf("failed to print job %q: %w", res.Name, err)
		}
	}

	return nil
}
