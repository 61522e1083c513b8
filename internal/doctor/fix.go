package doctor

import (
	"context"

	"github.com/raphi011/hookmaster/internal/install"
	"github.com/raphi011/hookmaster/internal/output"
)

// fixAllIssues applies fixes for all fixable issues.
// Returns the number of fixed and failed issues.
func fixAllIssues(ctx context.Context, p *output.Printer, repoRoot string, issues []Issue) (fixed, failed int) {
	needInstall := false
	for _, issue := range issues {
		if issue.FixAction == FixInstall {
			needInstall = true
		}
	}
	if !needInstall {
		return 0, 0
	}

	// Install never touches foreign hooks without Force.
	report, err := (&install.Installer{}).Install(ctx, repoRoot)
	if err != nil {
		p.Fail("Failed to install hooks: %v", err)
		for _, issue := range issues {
			if issue.FixAction == FixInstall {
				failed++
			}
		}
		return 0, failed
	}

	written := make(map[string]bool)
	for _, h := range report.Hooks {
		if h.Action == install.ActionCreated || h.Action == install.ActionUpdated {
			written[h.Hook] = true
		}
	}

	for _, issue := range issues {
		if issue.FixAction != FixInstall {
			continue
		}
		if written[issue.Key] {
			p.Success("Installed %s", issue.Key)
			fixed++
		} else {
			p.Fail("Could not install %s", issue.Key)
			failed++
		}
	}
	return fixed, failed
}
