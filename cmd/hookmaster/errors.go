package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/hooks"
)

// Exit codes follow sysexits(3) where one applies. A hook command's own
// exit code is passed through unchanged.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUnavailable = 69 // EX_UNAVAILABLE: command could not be launched
	exitIOErr       = 74 // EX_IOERR
	exitConfig      = 78 // EX_CONFIG: githooks.toml is invalid
)

// usageError marks invalid command line usage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var (
		exitErr   *hooks.ExitError
		launchErr *hooks.LaunchError
		cfgErr    *config.Error
		pathErr   *fs.PathError
		linkErr   *os.LinkError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &launchErr):
		return exitUnavailable
	case errors.As(err, &cfgErr):
		return exitConfig
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return exitIOErr
	default:
		return exitFailure
	}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
