package output

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Success prints a line prefixed with a green check mark.
func (p *Printer) Success(format string, a ...any) {
	p.status(successStyle.Render("✓"), format, a...)
}

// Warn prints a line prefixed with a yellow exclamation mark.
func (p *Printer) Warn(format string, a ...any) {
	p.status(warnStyle.Render("!"), format, a...)
}

// Fail prints a line prefixed with a red cross.
func (p *Printer) Fail(format string, a ...any) {
	p.status(failStyle.Render("✗"), format, a...)
}

// Info prints a dimmed line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintln(p.w, dimStyle.Render(fmt.Sprintf(format, a...)))
}

// Heading prints a bold line.
func (p *Printer) Heading(format string, a ...any) {
	fmt.Fprintln(p.w, boldStyle.Render(fmt.Sprintf(format, a...)))
}

func (p *Printer) status(symbol, format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", symbol, fmt.Sprintf(format, a...))
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
