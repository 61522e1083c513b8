package hooks

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher turns a configured command string into a process.
type Launcher interface {
	// Name identifies the interpreter in logs and errors.
	Name() string
	// Command prepares command, with args appended, to run in dir.
	Command(ctx context.Context, dir, command string, args []string) *exec.Cmd
}

// DefaultLauncher returns the launcher for the host operating system.
func DefaultLauncher() Launcher {
	if runtime.GOOS == "windows" {
		return WindowsCmd{}
	}
	return POSIXShell{}
}

// POSIXShell runs commands with "sh -c".
type POSIXShell struct{}

func (POSIXShell) Name() string { return "sh" }

func (POSIXShell) Command(ctx context.Context, dir, command string, args []string) *exec.Cmd {
	c := exec.CommandContext(ctx, "sh", "-c", commandLine(command, args, shellQuote))
	c.Dir = dir
	return c
}

// WindowsCmd runs commands with "cmd /C".
type WindowsCmd struct{}

func (WindowsCmd) Name() string { return "cmd" }

func (WindowsCmd) Command(ctx context.Context, dir, command string, args []string) *exec.Cmd {
	line := commandLine(command, args, windowsQuote)
	c := exec.CommandContext(ctx, "cmd", "/C", line)
	c.Dir = dir
	setRawCmdLine(c, line)
	return c
}

// commandLine appends the quoted args to command.
func commandLine(command string, args []string, quote func(string) string) string {
	if len(args) == 0 {
		return command
	}
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quote(a)
	}
	return command + " " + strings.Join(quoted, " ")
}

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// windowsQuote double-quotes s when cmd.exe would otherwise split or
// interpret it. Embedded double quotes are doubled.
func windowsQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"&|<>^%()") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
