// Package config loads the per-repository hook configuration.
//
// Configuration is read from githooks.toml in the repository root. Each
// top-level key names a git hook and holds the shell command to run:
//
//	pre-commit = "go vet ./..."
//	pre-push   = "go test ./..."
//	commit-msg = ""   # explicit no-op
//
// # Defaults
//
// A missing file is not an error and yields an empty configuration in which
// every hook is a no-op. prepare-commit-msg is special: its built-in message
// formatter always runs, and a configured command runs after it.
//
// # Validation
//
// Invalid TOML and non-string values for known hooks fail with [*Error].
// Unknown keys are ignored and reported through [HookConfig.Warnings],
// with a suggestion for the closest known hook name.
package config
