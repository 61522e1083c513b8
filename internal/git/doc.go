// Package git provides the git operations hookmaster depends on.
//
// Repository queries that must honour the user's git configuration
// (core.hooksPath, worktrees, includes) call the git CLI through
// [github.com/raphi011/hookmaster/internal/cmd]. Reading HEAD happens on every
// prepare-commit-msg invocation and uses go-git instead, so it works without
// spawning a process.
//
// # Repository Operations
//
//   - [CheckGit]: Verify git is installed
//   - [RepoRoot]: Top-level directory of the repository containing a path
//   - [HooksDir]: Directory git reads hook scripts from
//   - [IsRepo]: Whether a directory is the root of a repository
//
// # Branch Operations
//
//   - [HeadBranch]: Short name of the checked out branch
//   - [CurrentBranch]: Same answer via "git branch --show-current"
//   - [Branches]: Adapter used by the hook dispatcher
package git
