package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"

	"github.com/raphi011/hookmaster/internal/config"
	"github.com/raphi011/hookmaster/internal/install"
	"github.com/raphi011/hookmaster/internal/output"
)

// stubLookPath makes the hookmaster binary resolvable for the duration of
// the test. Tests using it must not run in parallel.
func stubLookPath(t *testing.T, found bool) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if found {
			return "/usr/local/bin/" + name, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
	t.Cleanup(func() { lookPath = orig })
}

func setupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatal(err)
	}
	return dir
}

func countCategory(issues []Issue, cat IssueCategory) int {
	n := 0
	for _, issue := range issues {
		if issue.Category == cat {
			n++
		}
	}
	return n
}

func TestRun_FreshRepo(t *testing.T) {
	stubLookPath(t, true)

	repo := setupRepo(t)
	var buf bytes.Buffer

	report, err := Run(context.Background(), output.New(&buf), repo, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Stats.HooksMissing != len(config.HookNames) {
		t.Errorf("HooksMissing = %d, want %d", report.Stats.HooksMissing, len(config.HookNames))
	}
	if got := countCategory(report.Issues, CategoryHooks); got != len(config.HookNames) {
		t.Errorf("hook issues = %d", got)
	}
	if report.Fixed != 0 {
		t.Errorf("Fixed = %d without --fix", report.Fixed)
	}
	if !strings.Contains(buf.String(), "hookmaster doctor --fix") {
		t.Errorf("output should suggest --fix:\n%s", buf.String())
	}
}

func TestRun_Fix(t *testing.T) {
	stubLookPath(t, true)

	repo := setupRepo(t)
	ctx := context.Background()
	var buf bytes.Buffer

	report, err := Run(ctx, output.New(&buf), repo, true)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Fixed != len(config.HookNames) || report.Failed != 0 {
		t.Errorf("Fixed = %d, Failed = %d", report.Fixed, report.Failed)
	}
	if report.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", report.Remaining())
	}

	buf.Reset()
	report, err = Run(ctx, output.New(&buf), repo, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Issues) != 0 {
		t.Errorf("issues after fix: %+v", report.Issues)
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestRun_ForeignHookNotFixed(t *testing.T) {
	stubLookPath(t, true)

	repo := setupRepo(t)
	hooksDir := filepath.Join(repo, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		t.Fatal(err)
	}
	foreign := []byte("#!/bin/sh\nnpx lint-staged\n")
	if err := os.WriteFile(filepath.Join(hooksDir, config.PreCommit), foreign, 0o755); err != nil {
		t.Fatal(err)
	}

	report, err := Run(context.Background(), output.New(&bytes.Buffer{}), repo, true)
	if err != nil {
		t.Fatal(err)
	}
	if report.Stats.HooksForeign != 1 {
		t.Errorf("HooksForeign = %d, want 1", report.Stats.HooksForeign)
	}
	if report.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1 (the foreign hook)", report.Remaining())
	}

	data, _ := os.ReadFile(filepath.Join(hooksDir, config.PreCommit))
	if !bytes.Equal(data, foreign) {
		t.Error("doctor --fix must not replace foreign hooks")
	}
}

func TestRun_ConfigIssues(t *testing.T) {
	stubLookPath(t, true)

	repo := setupRepo(t)
	if _, err := (&install.Installer{}).Install(context.Background(), repo); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"invalid toml", `pre-commit = "unterminated`, config.FileName},
		{"unknown key", `pre-comit = "make"`, `did you mean "pre-commit"`},
	}
	for _, tt := range tests {
		if err := os.WriteFile(config.Path(repo), []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}

		report, err := Run(context.Background(), output.New(&bytes.Buffer{}), repo, false)
		if err != nil {
			t.Fatalf("%s: Run failed: %v", tt.name, err)
		}
		if countCategory(report.Issues, CategoryConfig) != 1 {
			t.Fatalf("%s: config issues = %+v", tt.name, report.Issues)
		}
		for _, issue := range report.Issues {
			if issue.Category == CategoryConfig && !strings.Contains(issue.Description, tt.want) {
				t.Errorf("%s: description %q, want to contain %q", tt.name, issue.Description, tt.want)
			}
		}
	}
}

func TestRun_BinaryMissing(t *testing.T) {
	stubLookPath(t, false)

	repo := setupRepo(t)
	if _, err := (&install.Installer{}).Install(context.Background(), repo); err != nil {
		t.Fatal(err)
	}

	report, err := Run(context.Background(), output.New(&bytes.Buffer{}), repo, false)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, issue := range report.Issues {
		if issue.Category == CategoryEnv && issue.Key == install.DefaultBinary {
			found = true
		}
	}
	if !found {
		t.Errorf("missing binary not reported: %+v", report.Issues)
	}
}

func TestCheckEnvironment_GitNotRunnable(t *testing.T) {
	stubLookPath(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	issues := checkEnvironment(ctx)
	if len(issues) != 1 || issues[0].Key != "git" {
		t.Fatalf("issues = %+v, want a single git issue", issues)
	}
	if !strings.Contains(issues[0].Description, "cannot run") {
		t.Errorf("Description = %q, want it to say git cannot run", issues[0].Description)
	}
}
