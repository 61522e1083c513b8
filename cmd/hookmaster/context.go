package main

import (
	"context"
	"os"

	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/log"
)

type workDirKey struct{}

// withWorkDir attaches the directory hookmaster was started in.
func withWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// workDirFromContext returns the directory hookmaster was started in.
func workDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return "."
}

// hookRepoRoot returns the directory a hook's command runs in.
// Git starts non-bare hooks in the top of the worktree and server-side hooks
// in the bare repository, where --show-toplevel fails; the working directory
// is used then.
func hookRepoRoot(ctx context.Context) string {
	dir := workDirFromContext(ctx)
	root, err := git.RepoRoot(ctx, dir)
	if err != nil {
		log.FromContext(ctx).Debug("using working directory as repo root", "dir", dir, "error", err)
		return dir
	}
	return root
}
