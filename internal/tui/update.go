package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

// dayLoadedMsg carries a freshly computed day.
type dayLoadedMsg struct {
	date     time.Time
	segments []task.Segment
}

// taskMutatedMsg signals that a write finished and the day must reload.
type taskMutatedMsg struct{}

// errMsg carries a failed command's error.
type errMsg struct{ err error }

// loadDay fetches the day's tasks and expands them into segments.
func loadDay(repo task.Repository, date time.Time) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.ListTasksByDateRange(context.Background(), date, date)
		if err != nil {
			return errMsg{err}
		}
		return dayLoadedMsg{date: date, segments: task.SegmentsForDate(tasks, date)}
	}
}

// toggleComplete flips a task's completion state.
func toggleComplete(repo task.Repository, t *task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SetCompleted(context.Background(), t.ID, !t.Completed); err != nil {
			return errMsg{err}
		}
		return taskMutatedMsg{}
	}
}

// nudgeSchedule shifts a start by delta minutes, keeping the
// duration. A start pushed past midnight carries into the next day,
// and one pushed before 00:00 into the previous day.
func nudgeSchedule(date time.Time, start, end string, delta int) (time.Time, string, string) {
	duration := task.Duration(start, end)

	minutes := task.TimeToMinutes(start) + delta
	for minutes < 0 {
		minutes += task.MinutesPerDay
		date = dateutil.AddDays(date, -1)
	}
	for minutes >= task.MinutesPerDay {
		minutes -= task.MinutesPerDay
		date = dateutil.AddDays(date, 1)
	}

	newEnd := (minutes + duration) % task.MinutesPerDay
	return date, task.MinutesToTime(minutes), task.MinutesToTime(newEnd)
}

// nudgeTask moves a task by delta minutes, keeping its duration.
func nudgeTask(repo task.Repository, t *task.Task, delta int) tea.Cmd {
	return func() tea.Msg {
		date, start, end := nudgeSchedule(t.Date, t.StartTime, t.EndTime, delta)
		if err := repo.RescheduleTask(context.Background(), t.ID, date, start, end); err != nil {
			return errMsg{err}
		}
		return taskMutatedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayLoadedMsg:
		m.date = msg.date
		m.loading = false
		m.setSegments(msg.segments)
		return m, nil

	case taskMutatedMsg:
		// Segments and layout are views; recompute from storage after
		// every write.
		return m, loadDay(m.repo, m.date)

	case errMsg:
		m.loading = false
		m.status = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeAdd {
			return m.handleAddKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleAddKey drives the quick-add input line.
func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		line := m.input.Value()
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")

		t, err := parseQuickAdd(line, m.date)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, createTask(m.repo, t)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseQuickAdd parses a "HH:MM-HH:MM title" line into a task on date.
func parseQuickAdd(line string, date time.Time) (*task.Task, error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) != 2 || len(fields[0]) != 11 || fields[0][5] != '-' {
		return nil, errQuickAddFormat
	}
	return task.New(strings.TrimSpace(fields[1]), dateutil.FormatDate(date), "",
		fields[0][:5], fields[0][6:])
}

var errQuickAddFormat = errors.New(`quick add expects "HH:MM-HH:MM title"`)

// createTask persists a quick-added task.
func createTask(repo task.Repository, t *task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateTask(context.Background(), t); err != nil {
			return errMsg{err}
		}
		return taskMutatedMsg{}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h", "left":
		m.date = dateutil.AddDays(m.date, -1)
		m.loading = true
		return m, loadDay(m.repo, m.date)

	case "l", "right":
		m.date = dateutil.AddDays(m.date, 1)
		m.loading = true
		return m, loadDay(m.repo, m.date)

	case "t":
		m.date = dateutil.TruncateToDay(time.Now())
		m.loading = true
		return m, loadDay(m.repo, m.date)

	case "j", "down":
		if m.selected >= 0 && m.selected < len(m.segments)-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case " ":
		if seg, ok := m.selectedSegment(); ok {
			return m, toggleComplete(m.repo, seg.Task)
		}
		return m, nil

	case "J":
		if seg, ok := m.selectedSegment(); ok {
			return m, nudgeTask(m.repo, seg.Task, nudgeMinutes)
		}
		return m, nil

	case "K":
		if seg, ok := m.selectedSegment(); ok {
			return m, nudgeTask(m.repo, seg.Task, -nudgeMinutes)
		}
		return m, nil

	case "a":
		m.mode = ModeAdd
		m.input.Focus()
		return m, textinput.Blink

	case "y":
		if err := clipboard.WriteAll(m.plainView()); err != nil {
			m.status = "clipboard: " + err.Error()
		} else {
			m.status = "day copied to clipboard"
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selectedSegment() (task.Segment, bool) {
	if m.selected < 0 || m.selected >= len(m.segments) {
		return task.Segment{}, false
	}
	return m.segments[m.selected], true
}
