package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/raphi011/hookmaster/internal/commitmsg"
	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/log"
)

// ErrNoMessageFile is returned when prepare-commit-msg is dispatched without
// the path of the commit message file.
var ErrNoMessageFile = errors.New("prepare-commit-msg: missing commit message file argument")

// ExitError reports a configured command that ran and exited non-zero.
type ExitError struct {
	Hook string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("hook %q failed with exit code %d", e.Hook, e.Code)
}

// LaunchError reports a configured command that could not be started.
type LaunchError struct {
	Hook     string
	Launcher string
	Err      error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("hook %q: failed to start %s: %v", e.Hook, e.Launcher, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// BranchSource returns the branch checked out in a repository.
type BranchSource interface {
	CurrentBranch(ctx context.Context, repoRoot string) (string, error)
}

// Dispatcher runs the configured command for a hook event.
type Dispatcher struct {
	Launcher Launcher
	Branches BranchSource

	// LoadConfig defaults to config.Load.
	LoadConfig func(repoRoot string) (*config.HookConfig, error)

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewDispatcher returns a dispatcher wired to the host shell and the
// process's standard streams.
func NewDispatcher(branches BranchSource) *Dispatcher {
	return &Dispatcher{
		Launcher:   DefaultLauncher(),
		Branches:   branches,
		LoadConfig: config.Load,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Run dispatches hook name with git's hook arguments for the repository at
// repoRoot.
//
// prepare-commit-msg always formats the commit message file args[0] before
// its configured command, if any, runs. An unconfigured hook is a no-op.
func (d *Dispatcher) Run(ctx context.Context, name string, args []string, repoRoot string) error {
	l := log.FromContext(ctx)

	load := d.LoadConfig
	if load == nil {
		load = config.Load
	}
	cfg, err := load(repoRoot)
	if err != nil {
		return err
	}
	for _, w := range cfg.Warnings {
		l.Warn(w, "file", cfg.Path)
	}

	if !config.IsHookName(name) {
		l.Debug("not a supported hook, nothing to do", "hook", name)
		return nil
	}

	if name == config.PrepareCommitMsg {
		if err := d.formatMessage(ctx, args, repoRoot); err != nil {
			return err
		}
	}

	command, ok := cfg.CommandFor(name)
	if !ok {
		l.Debug("no command configured", "hook", name)
		return nil
	}
	return d.execute(ctx, name, command, args, repoRoot)
}

// formatMessage fills an empty commit message from the current branch name.
// A branch that cannot be determined never blocks the commit.
func (d *Dispatcher) formatMessage(ctx context.Context, args []string, repoRoot string) error {
	if len(args) == 0 || args[0] == "" {
		return ErrNoMessageFile
	}
	l := log.FromContext(ctx)

	if d.Branches == nil {
		l.Debug("no branch source, skipping commit message formatting")
		return nil
	}
	branchName, err := d.Branches.CurrentBranch(ctx, repoRoot)
	if err != nil {
		l.Warn("cannot determine current branch, commit message left as is", "error", err)
		return nil
	}

	res, err := commitmsg.RewriteFile(args[0], branchName)
	if err != nil {
		return err
	}
	if res.Changed {
		l.Debug("commit message formatted", "branch", branchName, "message", res.Message)
	} else {
		l.Debug("commit message unchanged", "branch", branchName, "ticket", res.Branch.Ticket)
	}
	return nil
}

func (d *Dispatcher) execute(ctx context.Context, name, command string, args []string, repoRoot string) error {
	launcher := d.Launcher
	if launcher == nil {
		launcher = DefaultLauncher()
	}

	c := launcher.Command(ctx, repoRoot, command, args)
	c.Stdin = d.Stdin
	c.Stdout = d.Stdout
	c.Stderr = d.Stderr

	done := log.FromContext(ctx).Command(c.Dir, c.Args[0], c.Args[1:]...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			// killed by a signal
			code = 1
		}
		return &ExitError{Hook: name, Code: code}
	}
	return &LaunchError{Hook: name, Launcher: launcher.Name(), Err: err}
}
