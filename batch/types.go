package batch

import "github.com/katalvlaran/eqsolve/render"

// Kind names what a job solves.
type Kind string

const (
	KindSystem     Kind = "system"
	KindInequality Kind = "inequality"
	KindInvalid    Kind = "invalid"
)

// Job is one entry of a batch file.
type Job struct {
	Name       string   `yaml:"name" json:"name"`
	System     []string `yaml:"system,omitempty" json:"system,omitempty"`
	Inequality string   `yaml:"inequality,omitempty" json:"inequality,omitempty"`
	Category   string   `yaml:"category,omitempty" json:"category,omitempty"`
}

// Kind classifies the job by which fields are set.
func (j Job) Kind() Kind {
	hasSystem, hasIneq := len(j.System) > 0, j.Inequality != ""
	switch {
	case hasSystem && !hasIneq && len(j.System) == 2:
		return KindSystem
	case hasIneq && !hasSystem:
		return KindInequality
	}

	return KindInvalid
}

// File is the top-level document of a batch file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Result is the outcome of one job.
type Result struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Kind       Kind                     `json:"kind"`
	Error      string                   `json:"error,omitempty"`
	System     *render.SystemReport     `json:"system,omitempty"`
	Inequality *render.InequalityReport `json:"inequality,omitempty"`
}

// Failed reports whether the job produced an error instead of a report.
func (r Result) Failed() bool { return r.Error != "" }
