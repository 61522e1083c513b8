package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/hookmaster/internal/log"
)

// RepoRoot returns the top-level directory of the repository containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return filepath.Clean(strings.TrimSpace(string(output))), nil
}

// HooksDir returns the directory git reads hooks from for the repository at
// repoPath. It honours core.hooksPath and linked worktrees. When git cannot
// answer, it falls back to <repoPath>/.git/hooks.
func HooksDir(ctx context.Context, repoPath string) string {
	output, err := outputGit(ctx, repoPath, "rev-parse", "--git-path", "hooks")
	if err != nil {
		log.FromContext(ctx).Debug("falling back to .git/hooks", "repo", repoPath, "error", err)
		return filepath.Join(repoPath, ".git", "hooks")
	}

	dir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoPath, dir)
	}
	return filepath.Clean(dir)
}

// IsRepo reports whether path is the root of a git repository.
// .git can be a directory (regular repo) or a file (worktree, submodule).
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// CurrentBranch returns the checked out branch via the git CLI.
// Returns "HEAD" for a detached HEAD.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "HEAD", nil
	}
	return branch, nil
}
