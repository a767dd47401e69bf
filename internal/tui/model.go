// Package tui provides the interactive timeline for dayline.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoratilla/dayline/internal/config"
	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/layout"
	"github.com/lmoratilla/dayline/internal/task"
	"github.com/lmoratilla/dayline/internal/tui/theme"
)

// nudgeMinutes is how far one keyboard reschedule moves a task.
const nudgeMinutes = 15

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd         // typing a quick-add line
)

// Model is the timeline TUI model.
type Model struct {
	repo   task.Repository
	config *config.Config
	styles *Styles

	date       time.Time // day being displayed
	segments   []task.Segment
	placements []layout.Placement
	selected   int // index into segments, -1 when empty

	width  int
	height int

	mode  Mode
	input textinput.Model // quick-add line, e.g. "09:00-10:30 Review PRs"

	loading bool
	status  string
}

// New creates the timeline model showing today.
func New(repo task.Repository, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "09:00-10:30 Review PRs"
	input.CharLimit = 120

	return Model{
		repo:     repo,
		config:   cfg,
		styles:   NewStyles(theme.Load(cfg.UI.Theme)),
		date:     dateutil.TruncateToDay(time.Now()),
		selected: -1,
		input:    input,
		loading:  true,
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return loadDay(m.repo, m.date)
}

// Run starts the timeline TUI.
func Run(repo task.Repository, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running timeline: %w", err)
	}
	return nil
}

// setSegments installs a freshly loaded day: segments, their layout,
// and a clamped selection. Layout is recomputed here and nowhere else,
// so geometry can never go stale relative to the data.
func (m *Model) setSegments(segments []task.Segment) {
	m.segments = segments

	items := make([]layout.Item, len(segments))
	for i, seg := range segments {
		items[i] = seg
	}
	m.placements = layout.Compute(items)

	switch {
	case len(segments) == 0:
		m.selected = -1
	case m.selected < 0:
		m.selected = 0
	case m.selected >= len(segments):
		m.selected = len(segments) - 1
	}
}
