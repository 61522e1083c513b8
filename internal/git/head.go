package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/hookmaster/internal/log"
)

// HeadBranch returns the short name of the branch HEAD points to in the
// repository containing dir. Unborn branches (no commits yet) are reported
// by name. A detached HEAD returns "HEAD".
func HeadBranch(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if ref.Type() != plumbing.SymbolicReference {
		return "HEAD", nil
	}
	return ref.Target().Short(), nil
}

// Branches resolves the current branch of a repository.
// It reads HEAD directly and asks the git CLI only if that fails, e.g. for
// repository formats go-git does not understand.
type Branches struct{}

// CurrentBranch implements the dispatcher's branch source.
func (Branches) CurrentBranch(ctx context.Context, repoRoot string) (string, error) {
	name, err := HeadBranch(repoRoot)
	if err == nil {
		return name, nil
	}

	log.FromContext(ctx).Debug("reading HEAD failed, asking git", "error", err)
	return CurrentBranch(ctx, repoRoot)
}
