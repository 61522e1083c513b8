// Package log provides context-aware logging for hookmaster.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostics to stderr and, optionally, to a log file.
//
// Console output follows the verbose/quiet flags. The file sink, when set,
// receives every record including debug output regardless of the flags.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	file    *slog.Logger
}

// New creates a new logger. quiet suppresses all console output and wins
// over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithFile returns a copy of l that also writes records to w as slog text.
func (l *Logger) WithFile(w io.Writer) *Logger {
	c := *l
	c.file = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &c
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	l.record(slog.LevelInfo, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	l.record(slog.LevelInfo, strings.TrimRight(fmt.Sprintln(args...), "\n"))
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warn writes a warning with key-value pairs unless quiet.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.record(slog.LevelWarn, msg, keyvals...)
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, "warning: "+formatKeyvals(msg, keyvals))
}

// Debug writes a message with key-value pairs in verbose mode.
// A trailing key without value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.record(slog.LevelDebug, msg, keyvals...)
	if !l.IsVerbose() {
		return
	}
	fmt.Fprintln(l.out, formatKeyvals(msg, keyvals))
}

// Command logs an external command execution.
// The returned function must be called with the elapsed time once the
// command finished. Only prints when verbose mode is enabled.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] $ " + line
	} else {
		line = "$ " + line
	}

	return func(d time.Duration) {
		l.record(slog.LevelDebug, "exec", "cmd", line, "duration", d)
		if !l.IsVerbose() {
			return
		}
		fmt.Fprintf(l.out, "%s (%s)\n", line, d)
	}
}

// IsVerbose returns true if verbose output is enabled and not silenced by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func (l *Logger) record(level slog.Level, msg string, keyvals ...any) {
	if l.file == nil {
		return
	}
	l.file.Log(context.Background(), level, msg, pairs(keyvals)...)
}

// pairs drops a trailing key without value.
func pairs(keyvals []any) []any {
	if len(keyvals)%2 != 0 {
		return keyvals[:len(keyvals)-1]
	}
	return keyvals
}

func formatKeyvals(msg string, keyvals []any) string {
	kv := pairs(keyvals)
	if len(kv) == 0 {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", kv[i], kv[i+1])
	}
	return sb.String()
}
