package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/eqsolve/config"
	"github.com/katalvlaran/eqsolve/examples"
	"github.com/katalvlaran/eqsolve/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	// flags
	verbose    bool
	configPath string
	output     string
	noColor    bool

	cfg      *config.Config
	logger   *zap.Logger
	catalog  *examples.Catalog
	renderer *render.Renderer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eqsolve",
		Short: "Solve linear equation systems and inequalities step by step",
		Long: `eqsolve parses small algebraic statements and explains their solution.

Two equations in x and y are solved with Cramer's rule; the report shows the
standardised equations, the coefficient matrix, the determinants and a
substitution check. A single inequality in x is solved by scanning the
integers of [-100, 100] that match the selected category.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&a.configPath, "config", "c", "eqsolve.yaml", "path to the YAML configuration file")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text or json (overrides the configuration)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured text output")

	root.AddCommand(
		a.systemCmd(),
		a.inequalityCmd(),
		a.exampleCmd(),
		a.batchCmd(),
		a.versionCmd(),
	)

	return root
}

// setup loads the configuration, then builds the logger, the example
// catalogue and the renderer.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output.Format = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	a.cfg = cfg

	if a.logger == nil {
		if a.logger, err = newLogger(cfg.Logging.Level, a.verbose); err != nil {
			return err
		}
	}

	if a.catalog, err = examples.New(cfg.Examples.System, cfg.Examples.Inequality); err != nil {
		return err
	}
	a.renderer = render.New(
		render.WithWriter(a.stdout),
		render.WithFormat(render.Format(cfg.Output.Format)),
		render.WithColor(cfg.Output.Color),
	)
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("format", cfg.Output.Format),
		zap.String("category", cfg.Inequality.DefaultCategory))

	return nil
}

// newLogger builds a production zap logger at level, or at debug when
// verbose is set.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the eqsolve version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "eqsolve", version)
		},
	}
}
