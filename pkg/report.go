package bumpytrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter narrates the progress of a run. Verbose messages are dropped unless
// the reporter was created verbose.
type Reporter struct {
	w       io.Writer
	verbose bool

	detail  lipgloss.Style
	warn    lipgloss.Style
	removed lipgloss.Style
	added   lipgloss.Style
}

// NewReporter returns a Reporter writing to w. Colors are only emitted when w
// is a terminal that supports them.
func NewReporter(w io.Writer, verbose bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		verbose: verbose,
		detail:  r.NewStyle().Faint(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#FFAF00")),
		removed: r.NewStyle().Foreground(lipgloss.Color("#FF8787")),
		added:   r.NewStyle().Foreground(lipgloss.Color("#73F59F")),
	}
}

// DiscardReporter returns a Reporter that writes nothing.
func DiscardReporter() *Reporter {
	return NewReporter(io.Discard, false)
}

func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintln(r.w, fmt.Sprintf(format, args...))
}

func (r *Reporter) Verbose(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.w, r.detail.Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintln(r.w, r.warn.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Diff prints a diff produced by Replacement.Diff, coloring changed lines.
func (r *Reporter) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Fprintln(r.w, line)
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(r.w, r.removed.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(r.w, r.added.Render(line))
		default:
			fmt.Fprintln(r.w, line)
		}
	}
}
