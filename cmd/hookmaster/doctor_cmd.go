package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/doctor"
	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair the hook setup",
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.NoArgs),
		Long: `Diagnose the hook setup of the current repository.

Checks:
- git and hookmaster are in PATH
- githooks.toml parses and only contains known hooks
- every hook script is installed and up to date

Examples:
  hookmaster doctor          # Check for issues
  hookmaster doctor --fix    # Reinstall missing or outdated hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root, err := git.RepoRoot(ctx, workDirFromContext(ctx))
			if err != nil {
				return err
			}

			report, err := doctor.Run(ctx, output.FromContext(ctx), root, fix)
			if err != nil {
				return err
			}
			if n := report.Remaining(); n > 0 {
				return fmt.Errorf("%d issues found", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Reinstall missing or outdated hooks")

	return cmd
}
