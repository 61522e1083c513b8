package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/hooks"
	"github.com/raphi011/hookmaster/internal/log"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "run <hook-name> [args...]",
		Short:             "Run the command configured for a hook",
		GroupID:           GroupHooks,
		Args:              usageArgs(cobra.MinimumNArgs(1)),
		ValidArgsFunction: completeHookName,
		Long: `Run the command configured for a hook in githooks.toml.

This is what installed hook scripts call. The command runs in the repository
root with the arguments git passed to the hook appended. hookmaster exits
with the command's exit code. Unconfigured hooks do nothing and succeed.`,
		Example: `  hookmaster run pre-commit                  # Run the pre-commit command
  hookmaster run pre-push origin git@host:r  # Pass hook arguments through`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repoRoot := hookRepoRoot(ctx)

			log.FromContext(ctx).Debug("dispatching hook", "hook", args[0], "repo", repoRoot)
			return hooks.NewDispatcher(git.Branches{}).Run(ctx, args[0], args[1:], repoRoot)
		},
	}

	// Everything after the hook name belongs to the hook.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newPrepareCommitMsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prepare-commit-msg <commit-msg-file> [source] [sha]",
		Short:   "Fill an empty commit message from the branch name",
		GroupID: GroupHooks,
		Args:    usageArgs(cobra.RangeArgs(1, 3)),
		Long: `Fill an empty commit message from the current branch name, then run the
command configured for prepare-commit-msg, if any.

A branch like "feature/JIRA-123-add-new-feature" yields the message
"JIRA-123: Add New Feature". Messages that already have content (-m, merge
or amend) and branches without a ticket are left untouched.`,
		Example: `  hookmaster prepare-commit-msg .git/COMMIT_EDITMSG`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return hooks.NewDispatcher(git.Branches{}).Run(ctx, config.PrepareCommitMsg, args, hookRepoRoot(ctx))
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}
