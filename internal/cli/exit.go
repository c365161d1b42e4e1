// Package cli holds the cobra commands behind the transposer and summer binaries.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	// ExitUsage is what a shell sees for exit(-1).
	ExitUsage = 255
)

// CLIError carries the exit status for a failed command. Quiet errors have
// already been reported to the user.
type CLIError struct {
	Code  int
	Err   error
	Quiet bool
}

func (e *CLIError) Error() string {
	return e.Err.Error()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Execute runs cmd and returns the process exit code, printing any
// error to stderr.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if !cliErr.Quiet {
			printError(cmd.ErrOrStderr(), cliErr.Err)
		}
		return cliErr.Code
	}

	printError(cmd.ErrOrStderr(), err)
	return ExitError
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
