// Package theme provides color themes for the timeline TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          lipgloss.Color // base background
	BgHighlight lipgloss.Color // task blocks
	BgSelection lipgloss.Color // selected block
	Fg          lipgloss.Color // primary foreground
	FgMuted     lipgloss.Color // hour labels, empty track
	Accent      lipgloss.Color // header, accents
	Done        lipgloss.Color // completed blocks
	Span        lipgloss.Color // multi-day continuation blocks
	Warning     lipgloss.Color // error/status messages
}

// Catppuccin variants, the planner's stock themes.
var themes = map[string]Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          lipgloss.Color("#1e1e2e"),
		BgHighlight: lipgloss.Color("#313244"),
		BgSelection: lipgloss.Color("#585b70"),
		Fg:          lipgloss.Color("#cdd6f4"),
		FgMuted:     lipgloss.Color("#6c7086"),
		Accent:      lipgloss.Color("#89b4fa"),
		Done:        lipgloss.Color("#a6e3a1"),
		Span:        lipgloss.Color("#94e2d5"),
		Warning:     lipgloss.Color("#f9e2af"),
	},
	"macchiato": {
		Name:        "macchiato",
		Bg:          lipgloss.Color("#24273a"),
		BgHighlight: lipgloss.Color("#363a4f"),
		BgSelection: lipgloss.Color("#5b6078"),
		Fg:          lipgloss.Color("#cad3f5"),
		FgMuted:     lipgloss.Color("#6e738d"),
		Accent:      lipgloss.Color("#8aadf4"),
		Done:        lipgloss.Color("#a6da95"),
		Span:        lipgloss.Color("#8bd5ca"),
		Warning:     lipgloss.Color("#eed49f"),
	},
	"frappe": {
		Name:        "frappe",
		Bg:          lipgloss.Color("#303446"),
		BgHighlight: lipgloss.Color("#414559"),
		BgSelection: lipgloss.Color("#626880"),
		Fg:          lipgloss.Color("#c6d0f5"),
		FgMuted:     lipgloss.Color("#737994"),
		Accent:      lipgloss.Color("#8caaee"),
		Done:        lipgloss.Color("#a6d189"),
		Span:        lipgloss.Color("#81c8be"),
		Warning:     lipgloss.Color("#e5c890"),
	},
	"latte": {
		Name:        "latte",
		Bg:          lipgloss.Color("#eff1f5"),
		BgHighlight: lipgloss.Color("#ccd0da"),
		BgSelection: lipgloss.Color("#acb0be"),
		Fg:          lipgloss.Color("#4c4f69"),
		FgMuted:     lipgloss.Color("#8c8fa1"),
		Accent:      lipgloss.Color("#1e66f5"),
		Done:        lipgloss.Color("#40a02b"),
		Span:        lipgloss.Color("#179299"),
		Warning:     lipgloss.Color("#df8e1d"),
	},
}

// Load returns the named theme, falling back to mocha for unknown names.
func Load(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["mocha"]
}
