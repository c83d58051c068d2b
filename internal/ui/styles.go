package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color classes
// - Key (blue): entry keys, verb names in help
// - Value (green): entry values
// - Note (yellow): entry notes
type styles struct {
	Key   lipgloss.Style
	Value lipgloss.Style
	Note  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Key:   r.NewStyle().Foreground(lipgloss.Color("4")),
		Value: r.NewStyle().Foreground(lipgloss.Color("2")),
		Note:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// ColorEnabled reports whether output to w should be colored under mode
// ("auto" or "never"). Auto colors only terminals.
func ColorEnabled(mode string, w io.Writer) bool {
	if mode == "never" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
