package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// setupTestRepo creates an empty git repo on branch main.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")

	if err := runGit(context.Background(), "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	return repoPath
}

func TestRepoRoot(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	sub := filepath.Join(repo, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := RepoRoot(context.Background(), sub)
	if err != nil {
		t.Fatalf("RepoRoot failed: %v", err)
	}
	if got != repo {
		t.Errorf("RepoRoot = %q, want %q", got, repo)
	}
}

func TestRepoRoot_NotARepo(t *testing.T) {
	t.Parallel()

	if _, err := RepoRoot(context.Background(), resolveTempDir(t)); err == nil {
		t.Error("RepoRoot outside a repository should fail")
	}
}

func TestHooksDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		want := filepath.Join(repo, ".git", "hooks")
		if got := HooksDir(ctx, repo); got != want {
			t.Errorf("HooksDir = %q, want %q", got, want)
		}
	})

	t.Run("core.hooksPath", func(t *testing.T) {
		t.Parallel()
		repo := setupTestRepo(t)
		custom := filepath.Join(repo, ".githooks")
		if err := runGit(ctx, repo, "config", "core.hooksPath", custom); err != nil {
			t.Fatal(err)
		}
		if got := HooksDir(ctx, repo); got != custom {
			t.Errorf("HooksDir = %q, want %q", got, custom)
		}
	})

	t.Run("fallback outside a repository", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		want := filepath.Join(dir, ".git", "hooks")
		if got := HooksDir(ctx, dir); got != want {
			t.Errorf("HooksDir = %q, want %q", got, want)
		}
	})
}

func TestIsRepo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	regular := filepath.Join(dir, "regular")
	if err := os.MkdirAll(filepath.Join(regular, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	worktree := filepath.Join(dir, "worktree")
	if err := os.MkdirAll(worktree, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(worktree, ".git"), []byte("gitdir: /elsewhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	plain := filepath.Join(dir, "plain")
	if err := os.MkdirAll(plain, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{regular, true},
		{worktree, true},
		{plain, false},
		{filepath.Join(dir, "missing"), false},
	}
	for _, tt := range tests {
		if got := IsRepo(tt.path); got != tt.want {
			t.Errorf("IsRepo(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCurrentBranch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupTestRepo(t)

	if err := runGit(ctx, repo, "checkout", "-b", "feature/JIRA-1-cli"); err != nil {
		t.Fatal(err)
	}

	got, err := CurrentBranch(ctx, repo)
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if got != "feature/JIRA-1-cli" {
		t.Errorf("CurrentBranch = %q", got)
	}
}
