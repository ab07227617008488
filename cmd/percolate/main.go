// Command percolate estimates the site-percolation threshold of an n×n grid
// by Monte Carlo simulation.
//
// Usage:
//
//	percolate <n> <trials> [--seed S] [--workers W] [--strategy rejection|shuffle]
//	          [--format text|yaml|json] [--log-level LEVEL] [--log-format text|json]
//
// Results go to stdout, logs and diagnostics to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitError carries a process exit code alongside its message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "percolate:", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// run executes the command with the given arguments; it never calls os.Exit.
func run(out, errOut io.Writer, args []string) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)

	return cmd.Execute()
}
