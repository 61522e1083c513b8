// Package cmd provides helpers for executing external commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/hookmaster/internal/log"
)

// RunContext executes a command in dir (current directory if empty).
// Stderr is captured and returned as the error message on failure.
// Returns ctx.Err() if the context was cancelled.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, false)
	return err
}

// OutputContext executes a command in dir and returns its stdout.
// Stderr is captured and returned as the error message on failure.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return run(ctx, dir, name, args, true)
}

func run(ctx context.Context, dir, name string, args []string, captureOutput bool) ([]byte, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stderr = &stderr
	if captureOutput {
		c.Stdout = &stdout
	}

	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, commandError(err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// commandError prefers the command's stderr over the bare exit status.
func commandError(err error, stderr string) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return err
	}
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
