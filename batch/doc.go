// Package batch solves many equation systems and inequalities from one
// YAML file in parallel.
//
// A batch file lists named jobs:
//
//	jobs:
//	  - name: classroom-1
//	    system: ["2x + 3y = 5", "x - y = 1"]
//	  - name: bound
//	    inequality: "x/2 - 3 <= 5"
//	    category: positive
//
// Runner fans the jobs out over an errgroup bounded by its concurrency.
// Each job gets a UUID and a Result at the job's own index, so output
// order matches input order regardless of completion order. A job that
// fails to parse records its error in the Result; only cancellation of
// the context aborts the run.
package batch
