package doctor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/git"
	"github.com/raphi011/hookmaster/internal/install"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// checkEnvironment finds tools the installed scripts depend on.
func checkEnvironment(ctx context.Context) []Issue {
	var issues []Issue

	if err := git.CheckGit(ctx); err != nil {
		desc := "git not found in PATH"
		if !errors.Is(err, git.ErrGitNotFound) {
			desc = err.Error()
		}
		issues = append(issues, Issue{
			Key:         "git",
			Description: desc,
		})
	}

	if _, err := lookPath(install.DefaultBinary); err != nil {
		issues = append(issues, Issue{
			Key:         install.DefaultBinary,
			Description: "hookmaster not found in PATH, installed hooks cannot run",
		})
	}

	return issues
}

// checkConfig validates githooks.toml. A missing file is fine.
func checkConfig(repoRoot string, stats *IssueStats) []Issue {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		return []Issue{{
			Key:         config.FileName,
			Description: err.Error(),
		}}
	}

	var issues []Issue
	for _, w := range cfg.Warnings {
		issues = append(issues, Issue{
			Key:         config.FileName,
			Description: w,
		})
	}
	stats.ConfigWarnings = len(cfg.Warnings)
	return issues
}

// checkHooks inspects each hook script.
func checkHooks(ctx context.Context, repoRoot string, stats *IssueStats) ([]Issue, error) {
	statuses, err := install.Status(ctx, repoRoot, install.DefaultBinary)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, st := range statuses {
		switch st.State {
		case install.StateInstalled:
			stats.HooksInstalled++
		case install.StateMissing:
			stats.HooksMissing++
			issues = append(issues, Issue{
				Key:         st.Hook,
				Description: "not installed",
				FixAction:   FixInstall,
			})
		case install.StateOutdated:
			stats.HooksOutdated++
			issues = append(issues, Issue{
				Key:         st.Hook,
				Description: "script is outdated",
				FixAction:   FixInstall,
			})
		case install.StateForeign:
			stats.HooksForeign++
			issues = append(issues, Issue{
				Key:         st.Hook,
				Description: fmt.Sprintf("%s was not written by hookmaster", st.Path),
			})
		}
	}
	return issues, nil
}
