package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/install"
	"github.com/raphi011/hookmaster/internal/log"
	"github.com/raphi011/hookmaster/internal/output"
)

func newAddCmd() *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "add <path>",
		Short:   "Install hooks into every repository under a path",
		GroupID: GroupSetup,
		Args:    usageArgs(cobra.ExactArgs(1)),
		Long: `Install hookmaster's delegating hooks into every git repository found
under path, including path itself.

Hidden directories are skipped and repositories nested inside another
repository are not searched. Existing hooks written by other tools are left
in place unless --force is given; they are then saved as
<hook>.hookmaster.bak before being replaced.`,
		Example: `  hookmaster add ~/code             # Install into all repos under ~/code
  hookmaster add . --dry-run        # Show what would be installed
  hookmaster add ~/code --force     # Replace existing hooks (with backup)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			root := args[0]
			if !filepath.IsAbs(root) {
				root = filepath.Join(workDirFromContext(ctx), root)
			}

			repos, err := install.FindRepos(root)
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				l.Warn("no git repositories found", "path", root)
				return nil
			}

			inst := &install.Installer{Force: force, DryRun: dryRun}
			tty := output.IsTerminal(p.Writer())
			if tty {
				p.Heading("Found %d git repositories", len(repos))
			}

			var errs []error
			for _, repo := range repos {
				report, err := inst.Install(ctx, repo)
				if err != nil {
					if tty {
						p.Fail("%s: %v", repo, err)
					}
					errs = append(errs, fmt.Errorf("%s: %w", repo, err))
					continue
				}
				printInstallReport(p, report, tty)
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace existing hooks written by other tools")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be installed without writing")

	return cmd
}

// printInstallReport prints one repository's result. Without a terminal only
// the repository path is printed, so the output can be piped.
func printInstallReport(p *output.Printer, r install.Report, tty bool) {
	if !tty {
		p.Println(r.Repo)
		return
	}

	written := r.Count(install.ActionCreated) + r.Count(install.ActionUpdated) + r.Count(install.ActionReplaced)
	verb := "installed"
	if r.DryRun {
		verb = "would install"
	}

	if written == 0 && len(r.Skipped()) == 0 {
		p.Success("%s: up to date", r.Repo)
	} else {
		p.Success("%s: %s %d hooks", r.Repo, verb, written)
	}

	for _, h := range r.Hooks {
		if h.Action == install.ActionReplaced {
			p.Info("  %s replaced, backup at %s", h.Hook, h.Backup)
		}
	}
	for _, h := range r.Skipped() {
		p.Warn("  %s: existing hook kept, use --force to replace it", h.Hook)
	}
}
