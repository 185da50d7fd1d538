package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/clarion-labs/clarion/internal/report"
)

var (
	colorSuccess = lipgloss.Color("#00E676")
	colorWarning = lipgloss.Color("#FFD700")
	colorDanger  = lipgloss.Color("#FF5252")
	colorInfo    = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#8C8C8C")
)

// Renderer prints report entries, one per line, styled by kind.
type Renderer struct {
	w       io.Writer
	verbose bool
	labels  map[report.Kind]lipgloss.Style
	text    map[report.Kind]lipgloss.Style
}

// NewRenderer returns a Renderer for w. Colors are used only when w is a
// terminal. Debug entries are printed only when verbose is set.
func NewRenderer(w io.Writer, verbose bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	label := func(c lipgloss.Color) lipgloss.Style {
		return lr.NewStyle().Foreground(c).Bold(true)
	}
	return &Renderer{
		w:       w,
		verbose: verbose,
		labels: map[report.Kind]lipgloss.Style{
			report.Success: label(colorSuccess),
			report.Warning: label(colorWarning),
			report.Error:   label(colorDanger),
			report.Debug:   label(colorMuted),
		},
		text: map[report.Kind]lipgloss.Style{
			report.Info:  lr.NewStyle().Foreground(colorInfo),
			report.Debug: lr.NewStyle().Foreground(colorMuted),
		},
	}
}

// Format returns the line for e without a trailing newline.
func (r *Renderer) Format(e report.Entry) string {
	msg := e.Message
	if style, ok := r.text[e.Kind]; ok {
		msg = style.Render(msg)
	}
	style, ok := r.labels[e.Kind]
	if !ok {
		return msg
	}
	return style.Render("["+labelText(e.Kind)+"]") + " " + msg
}

// Render prints every visible entry of rep.
func (r *Renderer) Render(rep *report.Report) {
	if rep == nil {
		return
	}
	for _, e := range rep.Entries {
		if e.Kind == report.Debug && !r.verbose {
			continue
		}
		fmt.Fprintln(r.w, r.Format(e))
	}
}

func labelText(k report.Kind) string {
	switch k {
	case report.Success:
		return "SUCCESS"
	case report.Warning:
		return "WARNING"
	case report.Error:
		return "ERROR"
	case report.Debug:
		return "DEBUG"
	default:
		return ""
	}
}
