package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

var lookPath = exec.LookPath

// CheckGit verifies that git is available in PATH and can be executed.
// Hook scripts are resolved by the git binary, so nothing works without it.
func CheckGit(ctx context.Context) error {
	if _, err := lookPath("git"); err != nil {
		return ErrGitNotFound
	}
	if err := runGit(ctx, "", "--version"); err != nil {
		return fmt.Errorf("git is installed but cannot run: %w", err)
	}
	return nil
}
