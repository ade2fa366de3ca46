package batch

import "errors"

var (
	// ErrNoJobs indicates a batch file without jobs.
	ErrNoJobs = errors.New("batch: no jobs")

	// ErrInvalidJob indicates a job that is neither a two-equation system
	// nor a single inequality.
	ErrInvalidJob = errors.New("batch: job needs either two equations or one inequality")
)
