package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/hooks"
)

// State is the installation state of a single hook.
type State string

const (
	StateInstalled State = "installed"
	StateMissing   State = "missing"
	StateForeign   State = "foreign"  // a hook not written by hookmaster
	StateOutdated  State = "outdated" // a hookmaster script that differs from the current one
)

// HookStatus describes one hook file.
type HookStatus struct {
	Hook  string
	Path  string
	State State
}

// Status inspects the hooks directory of the repository at repoPath.
// binary is the command the current scripts should exec.
func Status(ctx context.Context, repoPath, binary string) ([]HookStatus, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	dir := git.HooksDir(ctx, repoPath)

	statuses := make([]HookStatus, 0, len(config.HookNames))
	for _, name := range config.HookNames {
		path := filepath.Join(dir, name)
		st := HookStatus{Hook: name, Path: path}

		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			st.State = StateMissing
		case err != nil:
			return nil, fmt.Errorf("failed to read hook: %w", err)
		case !hooks.IsManaged(content):
			st.State = StateForeign
		case string(content) != hooks.Script(name, binary) || !isExecutable(path):
			st.State = StateOutdated
		default:
			st.State = StateInstalled
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// isExecutable reports whether path has any execute bit set.
// Windows has no execute bits; git for Windows runs hooks regardless.
func isExecutable(path string) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
