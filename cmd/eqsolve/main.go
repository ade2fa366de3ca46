// Command eqsolve solves two-variable linear systems and single-variable
// linear inequalities from the command line.
//
//	eqsolve system "2x + 3y = 5" "x - y = 1"
//	eqsolve inequality "3x - 4 >= 2x + 1" --category positive
//	eqsolve example inequality --index 3
//	eqsolve batch jobs.yaml --output json
//
// Exit status is 0 on success, 2 when an input fails to parse and 1 for
// any other failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitParseError = 2
)

// inputError marks a failure caused by unparsable user input.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)

		var ie *inputError
		if errors.As(err, &ie) {
			return exitParseError
		}
		return exitFailure
	}

	return exitOK
}
