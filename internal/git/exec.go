package git

import (
	"context"

	"github.com/raphi011/hookmaster/internal/cmd"
)

// runGit runs git against the repository at dir. An empty dir uses the
// process working directory.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", withRepo(dir, args)...)
}

// outputGit is runGit returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", withRepo(dir, args)...)
}

// withRepo selects the repository with -C so relative paths in git's output
// stay relative to dir.
func withRepo(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}
