// Package ui renders the short status lines katanaa prints for the user:
// enabled confirmations, the commands about to run, and doctor check
// results. Colors are dropped automatically when the writer is not a
// terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("10")
	colorWarning = lipgloss.Color("11")
	colorError   = lipgloss.Color("9")
	colorDim     = lipgloss.Color("8")
)

// Printer writes styled status lines to w.
type Printer struct {
	w io.Writer

	successStyle lipgloss.Style
	commandStyle lipgloss.Style
	promptStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
}

// NewPrinter returns a Printer whose color profile is detected from w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		successStyle: r.NewStyle().Foreground(colorSuccess),
		commandStyle: r.NewStyle().Foreground(colorWarning),
		promptStyle:  r.NewStyle().Foreground(colorDim),
		errorStyle:   r.NewStyle().Foreground(colorError).Bold(true),
		warnStyle:    r.NewStyle().Foreground(colorWarning),
	}
}

// Log prints an informational "[LOG]: msg" line.
func (p *Printer) Log(msg string) {
	fmt.Fprintf(p.w, "[LOG]: %s\n", msg)
}

// Enabled prints "[LOG]: <name> enabled".
func (p *Printer) Enabled(name string) {
	fmt.Fprintf(p.w, "[LOG]: %s %s\n", name, p.successStyle.Render("enabled"))
}

// Command echoes a command line before it runs.
func (p *Printer) Command(argv []string) {
	fmt.Fprintf(p.w, "%s %s\n", p.promptStyle.Render("$"), p.commandStyle.Render(strings.Join(argv, " ")))
}

// Error prints "error: <err>".
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s: %v\n", p.errorStyle.Render("error"), err)
}

// Check status tags, padded to the same width.
const (
	StatusOK   = "[ OK ]"
	StatusMiss = "[MISS]"
	StatusWarn = "[WARN]"
	StatusFail = "[FAIL]"
	StatusInfo = "[INFO]"
)

// Check prints an indented doctor line such as "  [ OK ] clang 17.0.6".
func (p *Printer) Check(status, msg string) {
	tag := status
	switch status {
	case StatusOK:
		tag = p.successStyle.Render(status)
	case StatusWarn, StatusMiss:
		tag = p.warnStyle.Render(status)
	case StatusFail:
		tag = p.errorStyle.Render(status)
	}
	fmt.Fprintf(p.w, "  %s %s\n", tag, msg)
}

// Section prints a heading line for a group of checks.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w, title)
}
