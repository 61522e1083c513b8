package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/hookmaster/internal/storage"
)

// ErrExists is returned by WriteSample when a config file is already present.
var ErrExists = errors.New("config file already exists")

const sampleConfig = `# hookmaster configuration
#
# Each key is a git hook name, each value the shell command to run for it.
# Commands run from the repository root with "sh -c" ("cmd /C" on Windows);
# the arguments git passes to the hook are appended to the command.
# An empty string disables a hook.
#
# Supported hooks:
#   pre-commit, prepare-commit-msg, commit-msg, post-commit,
#   pre-push, post-receive, pre-receive, update
#
# prepare-commit-msg always fills in an empty commit message from the branch
# name first ("feature/JIRA-123-add-login" -> "JIRA-123: Add Login"); a command
# configured for it runs afterwards.

pre-commit = "go vet ./... && go test ./..."
pre-push = "go test -race ./..."
commit-msg = ""
`

// Sample returns the content written by WriteSample.
func Sample() string {
	return sampleConfig
}

// WriteSample creates githooks.toml in repoRoot.
// If force is false and the file exists, returns ErrExists.
// Returns the path of the written file.
func WriteSample(repoRoot string, force bool) (string, error) {
	path := Path(repoRoot)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	if err := storage.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("write sample config: %w", err)
	}
	return path, nil
}
