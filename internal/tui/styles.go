package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lmoratilla/dayline/internal/tui/theme"
)

// Styles holds precomputed lipgloss styles derived from a theme.
type Styles struct {
	Header   lipgloss.Style
	HourRule lipgloss.Style
	Empty    lipgloss.Style
	Block    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Span     lipgloss.Style
	Footer   lipgloss.Style
	Status   lipgloss.Style
}

// NewStyles derives the style set for a theme.
func NewStyles(t theme.Theme) *Styles {
	return &Styles{
		Header:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		HourRule: lipgloss.NewStyle().Foreground(t.FgMuted),
		Empty:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Block:    lipgloss.NewStyle().Foreground(t.Fg).Background(t.BgHighlight),
		Selected: lipgloss.NewStyle().Foreground(t.Fg).Background(t.BgSelection).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(t.Done).Background(t.BgHighlight),
		Span:     lipgloss.NewStyle().Foreground(t.Span).Background(t.BgHighlight),
		Footer:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Status:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}
