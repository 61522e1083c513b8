// Package cmd runs short-lived helper commands such as git plumbing calls.
//
// Failures carry the command's stderr as the error message, so callers can
// wrap them directly:
//
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "rev-parse", "--git-path", "hooks")
//	if err != nil {
//	    return fmt.Errorf("resolve hooks dir: %w", err)
//	}
//
// A cancelled context is reported as ctx.Err() rather than as the signal
// exit of the killed process. Every call is timed through the context
// logger and printed in verbose mode.
//
// Hook commands configured by the user do not go through this package: they
// need the terminal's stdin/stdout and their exit code, see package hooks.
package cmd
