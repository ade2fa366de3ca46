package batch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/eqsolve/equation"
	"github.com/katalvlaran/eqsolve/inequality"
	"github.com/katalvlaran/eqsolve/render"
	"github.com/katalvlaran/eqsolve/system"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when a Runner is built without WithConcurrency.
const DefaultConcurrency = 4

// Runner solves batch jobs concurrently.
type Runner struct {
	logger      *zap.Logger
	concurrency int
	category    inequality.Category
	newID       func() string
}

// Option customizes a Runner.
type Option func(*Runner)

// WithConcurrency bounds the number of jobs solved at once. Values below
// one are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithDefaultCategory sets the category of inequality jobs that name none.
func WithDefaultCategory(c inequality.Category) Option {
	return func(r *Runner) { r.category = c }
}

// WithIDFunc replaces the UUID generator, for deterministic output.
func WithIDFunc(f func() string) Option {
	return func(r *Runner) {
		if f != nil {
			r.newID = f
		}
	}
}

// NewRunner returns a Runner logging to logger (nil means no logging).
func NewRunner(logger *zap.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		logger:      logger,
		concurrency: DefaultConcurrency,
		category:    inequality.All,
		newID:       func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run solves every job and returns one Result per job, in input order.
// The only error is the context's, in which case the partial results are
// discarded.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, job := range jobs {
		id := r.newID()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.solve(id, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	r.logger.Info("batch finished", zap.Int("jobs", len(jobs)), zap.Int("failed", failed))

	return results, nil
}

func (r *Runner) solve(id string, job Job) Result {
	res := Result{ID: id, Name: job.Name, Kind: job.Kind()}
	log := r.logger.With(zap.String("job_id", id), zap.String("name", job.Name), zap.String("kind", string(res.Kind)))

	var err error
	switch res.Kind {
	case KindSystem:
		res.System, err = solveSystem(job.System[0], job.System[1])
	case KindInequality:
		res.Inequality, err = r.solveInequality(job.Inequality, job.Category)
	default:
		err = fmt.Errorf("job %q: %w", job.Name, ErrInvalidJob)
	}
	if err != nil {
		res.Error = err.Error()
		log.Warn("job failed", zap.Error(err))
		return res
	}

	log.Debug("job solved")

	return res
}

func solveSystem(s1, s2 string) (*render.SystemReport, error) {
	e1, err := equation.Parse(s1)
	if err != nil {
		return nil, fmt.Errorf("equation 1: %w", err)
	}
	e2, err := equation.Parse(s2)
	if err != nil {
		return nil, fmt.Errorf("equation 2: %w", err)
	}
	rep := render.NewSystemReport(e1, e2, system.SolveEquations(e1, e2))

	return &rep, nil
}

func (r *Runner) solveInequality(text, category string) (*render.InequalityReport, error) {
	c := r.category
	if category != "" {
		var err error
		if c, err = inequality.ParseCategory(category); err != nil {
			return nil, err
		}
	}
	q, err := inequality.ParseInequality(text)
	if err != nil {
		return nil, err
	}
	rep := render.NewInequalityReport(q, c, inequality.Solve(q, c))

	return &rep, nil
}
