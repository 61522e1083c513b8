package doctor

import (
	"context"

	"github.com/raphi011/hookmaster/internal/output"
)

// Run performs diagnostic checks on the repository at repoRoot and
// optionally fixes issues.
func Run(ctx context.Context, p *output.Printer, repoRoot string, fix bool) (Report, error) {
	var report Report

	p.Println("Checking environment...")
	envIssues := checkEnvironment(ctx)
	for i := range envIssues {
		envIssues[i].Category = CategoryEnv
	}
	report.Issues = append(report.Issues, envIssues...)

	p.Println("Checking config...")
	cfgIssues := checkConfig(repoRoot, &report.Stats)
	for i := range cfgIssues {
		cfgIssues[i].Category = CategoryConfig
	}
	report.Issues = append(report.Issues, cfgIssues...)

	p.Println("Checking hooks...")
	hookIssues, err := checkHooks(ctx, repoRoot, &report.Stats)
	if err != nil {
		return report, err
	}
	for i := range hookIssues {
		hookIssues[i].Category = CategoryHooks
	}
	report.Issues = append(report.Issues, hookIssues...)

	printSummary(p, report.Stats)

	if len(report.Issues) == 0 {
		p.Println()
		p.Success("No issues found")
		return report, nil
	}

	p.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(p, report.Issues)

	if fix {
		p.Println()
		report.Fixed, report.Failed = fixAllIssues(ctx, p, repoRoot, report.Issues)
		return report, nil
	}

	if hasFixable(report.Issues) {
		p.Println("\nRun 'hookmaster doctor --fix' to repair.")
	}
	return report, nil
}

func hasFixable(issues []Issue) bool {
	for _, issue := range issues {
		if issue.FixAction != FixNone {
			return true
		}
	}
	return false
}

// printSummary prints a categorized summary.
func printSummary(p *output.Printer, stats IssueStats) {
	p.Println()

	if stats.HooksInstalled > 0 {
		p.Success("%d hooks installed", stats.HooksInstalled)
	}
	if stats.HooksMissing > 0 {
		p.Warn("%d hooks missing", stats.HooksMissing)
	}
	if stats.HooksOutdated > 0 {
		p.Warn("%d hooks outdated", stats.HooksOutdated)
	}
	if stats.HooksForeign > 0 {
		p.Warn("%d hooks written by another tool", stats.HooksForeign)
	}
	if stats.ConfigWarnings > 0 {
		p.Warn("%d config warnings", stats.ConfigWarnings)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(p *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryEnv:    "Environment",
		CategoryConfig: "Config",
		CategoryHooks:  "Hooks",
	}

	for _, cat := range []IssueCategory{CategoryEnv, CategoryConfig, CategoryHooks} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		p.Printf("\n")
		p.Heading("%s:", categoryNames[cat])
		for _, issue := range catIssues {
			p.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
