package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/install"
	"github.com/raphi011/hookmaster/internal/output"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create githooks.toml and install hooks in the current repository",
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		Long: `Create a sample githooks.toml in the repository root and install
hookmaster's delegating hooks.

An existing githooks.toml is kept unless --force is given. --force also
replaces existing hooks written by other tools, after saving a backup.`,
		Example: `  hookmaster init           # Set up the current repository
  hookmaster init --force   # Overwrite githooks.toml and existing hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			if err := git.CheckGit(ctx); err != nil {
				return err
			}
			root, err := git.RepoRoot(ctx, workDirFromContext(ctx))
			if err != nil {
				return err
			}

			path, err := config.WriteSample(root, force)
			switch {
			case errors.Is(err, config.ErrExists):
				p.Info("%s already exists, keeping it", path)
			case err != nil:
				return err
			default:
				p.Success("Created %s", path)
			}

			report, err := (&install.Installer{Force: force}).Install(ctx, root)
			if err != nil {
				return err
			}
			printInstallReport(p, report, true)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite githooks.toml and replace existing hooks")

	return cmd
}
