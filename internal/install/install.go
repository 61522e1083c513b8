package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/hooks"
	"github.com/raphi011/hookmaster/internal/log"
	"github.com/raphi011/hookmaster/internal/storage"
)

// DefaultBinary is the command scripts use when none is configured.
const DefaultBinary = "hookmaster"

// BackupSuffix is appended to a foreign hook's file name when it is replaced.
const BackupSuffix = ".hookmaster.bak"

// Action describes what Install did with a single hook.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"   // outdated hookmaster script rewritten
	ActionUnchanged Action = "unchanged" // already up to date
	ActionReplaced  Action = "replaced"  // foreign hook backed up and replaced
	ActionSkipped   Action = "skipped"   // foreign hook left in place
)

// HookResult is the outcome for one hook.
type HookResult struct {
	Hook   string
	Path   string
	Action Action
	Backup string // set for ActionReplaced
}

// Report summarizes an installation into one repository.
type Report struct {
	Repo     string
	HooksDir string
	DryRun   bool
	Hooks    []HookResult
}

// Count returns the number of hooks with the given action.
func (r Report) Count(a Action) int {
	n := 0
	for _, h := range r.Hooks {
		if h.Action == a {
			n++
		}
	}
	return n
}

// Skipped returns the hooks left in place because they are foreign.
func (r Report) Skipped() []HookResult {
	var out []HookResult
	for _, h := range r.Hooks {
		if h.Action == ActionSkipped {
			out = append(out, h)
		}
	}
	return out
}

// Installer writes delegating hook scripts.
type Installer struct {
	// Binary is the hookmaster command scripts exec. Defaults to DefaultBinary.
	Binary string
	// Force replaces foreign hooks after backing them up.
	Force bool
	// DryRun reports what would change without touching the filesystem.
	DryRun bool
}

func (i *Installer) binary() string {
	if i.Binary == "" {
		return DefaultBinary
	}
	return i.Binary
}

// Install writes a script for every supported hook into the repository at
// repoPath.
func (i *Installer) Install(ctx context.Context, repoPath string) (Report, error) {
	dir := git.HooksDir(ctx, repoPath)
	report := Report{Repo: repoPath, HooksDir: dir, DryRun: i.DryRun}

	if !i.DryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return report, fmt.Errorf("failed to create hooks directory: %w", err)
		}
	}

	for _, name := range config.HookNames {
		res, err := i.installHook(ctx, dir, name)
		if err != nil {
			return report, err
		}
		report.Hooks = append(report.Hooks, res)
	}
	return report, nil
}

func (i *Installer) installHook(ctx context.Context, dir, name string) (HookResult, error) {
	l := log.FromContext(ctx)
	path := filepath.Join(dir, name)
	script := hooks.Script(name, i.binary())
	res := HookResult{Hook: name, Path: path}

	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		res.Action = ActionCreated
	case err != nil:
		return res, fmt.Errorf("failed to read hook: %w", err)
	case string(existing) == script && isExecutable(path):
		res.Action = ActionUnchanged
		return res, nil
	case hooks.IsManaged(existing):
		res.Action = ActionUpdated
	case !i.Force:
		res.Action = ActionSkipped
		l.Debug("foreign hook left in place", "path", path)
		return res, nil
	default:
		res.Action = ActionReplaced
		res.Backup = path + BackupSuffix
	}

	if i.DryRun {
		return res, nil
	}

	if res.Backup != "" {
		if err := storage.CopyFile(path, res.Backup); err != nil {
			return res, fmt.Errorf("failed to back up %s: %w", name, err)
		}
		l.Debug("backed up foreign hook", "path", res.Backup)
	}
	if err := storage.WriteFileAtomic(path, []byte(script), 0o755); err != nil {
		return res, fmt.Errorf("failed to write hook: %w", err)
	}
	// An overwritten file keeps its old mode, which may lack the x bit.
	if err := os.Chmod(path, 0o755); err != nil {
		return res, fmt.Errorf("failed to make hook executable: %w", err)
	}
	l.Debug("hook written", "hook", name, "action", string(res.Action))
	return res, nil
}
