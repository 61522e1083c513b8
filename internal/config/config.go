package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sahilm/fuzzy"
)

// FileName is the per-repository configuration file, located in the repo root.
const FileName = "githooks.toml"

// Hook names recognized in the configuration.
const (
	PreCommit        = "pre-commit"
	PrepareCommitMsg = "prepare-commit-msg"
	CommitMsg        = "commit-msg"
	PostCommit       = "post-commit"
	PrePush          = "pre-push"
	PostReceive      = "post-receive"
	PreReceive       = "pre-receive"
	Update           = "update"
)

// HookNames lists every supported hook in installation order.
var HookNames = []string{
	PreCommit,
	PrepareCommitMsg,
	CommitMsg,
	PostCommit,
	PrePush,
	PostReceive,
	PreReceive,
	Update,
}

// IsHookName reports whether name is one of HookNames.
func IsHookName(name string) bool {
	return slices.Contains(HookNames, name)
}

// Error reports a configuration file that exists but cannot be used.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %v", e.Err)
	}
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HookConfig maps hook names to shell commands.
// It is immutable once loaded.
type HookConfig struct {
	Path     string   // file the config was loaded from, empty if none
	Warnings []string // non-fatal problems such as unknown keys

	commands map[string]string
}

// CommandFor returns the command configured for hook.
// Returns false when the hook is not configured or its command is blank,
// which both mean "do nothing".
func (c *HookConfig) CommandFor(hook string) (string, bool) {
	if c == nil {
		return "", false
	}
	cmd, ok := c.commands[hook]
	if !ok || strings.TrimSpace(cmd) == "" {
		return "", false
	}
	return cmd, true
}

// Configured returns the names of hooks with a non-blank command, in
// HookNames order.
func (c *HookConfig) Configured() []string {
	var names []string
	for _, name := range HookNames {
		if _, ok := c.CommandFor(name); ok {
			names = append(names, name)
		}
	}
	return names
}

// Path returns the config file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Exists reports whether repoRoot contains a config file.
func Exists(repoRoot string) bool {
	_, err := os.Stat(Path(repoRoot))
	return err == nil
}

// Load reads githooks.toml from repoRoot.
// A missing file yields an empty config and no error.
// Returns *Error if the file exists but is invalid.
func Load(repoRoot string) (*HookConfig, error) {
	path := Path(repoRoot)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &HookConfig{commands: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes configuration content.
// Top-level keys are hook names with string values. Unknown keys are kept
// out of the config and reported in Warnings.
func Parse(data []byte) (*HookConfig, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, &Error{Err: err}
	}

	cfg := &HookConfig{commands: make(map[string]string, len(raw))}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		if !IsHookName(key) {
			cfg.Warnings = append(cfg.Warnings, unknownKeyWarning(key))
			continue
		}
		cmd, ok := value.(string)
		if !ok {
			return nil, &Error{Err: fmt.Errorf("%s: expected a command string, got %T", key, value)}
		}
		cfg.commands[key] = cmd
	}

	return cfg, nil
}

// unknownKeyWarning describes an unrecognized key, suggesting the closest
// hook name when there is one.
func unknownKeyWarning(key string) string {
	msg := fmt.Sprintf("unknown hook %q ignored", key)
	if suggestion := suggestHook(key); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}

// suggestHook returns the best fuzzy match for key among HookNames.
func suggestHook(key string) string {
	matches := fuzzy.Find(key, HookNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
