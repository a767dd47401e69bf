package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

var day = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestParseQuickAdd(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTitle string
		wantStart string
		wantEnd   string
		wantErr   error
	}{
		{
			name: "simple line",
			line: "09:00-10:30 Review PRs",
			wantTitle: "Review PRs", wantStart: "09:00", wantEnd: "10:30",
		},
		{
			name: "wraparound times",
			line: "23:00-01:00 Night shift",
			wantTitle: "Night shift", wantStart: "23:00", wantEnd: "01:00",
		},
		{
			name: "surrounding whitespace",
			line: "  09:00-10:00   padded title ",
			wantTitle: "padded title", wantStart: "09:00", wantEnd: "10:00",
		},
		{name: "missing title", line: "09:00-10:30", wantErr: errQuickAddFormat},
		{name: "missing range", line: "just a title", wantErr: errQuickAddFormat},
		{name: "wrong separator", line: "09:00/10:30 title", wantErr: errQuickAddFormat},
		{name: "empty", line: "", wantErr: errQuickAddFormat},
		{name: "bad times", line: "9h-10h30 title", wantErr: errQuickAddFormat},
		{name: "invalid hour", line: "25:00-26:00 title", wantErr: task.ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuickAdd(tt.line, day)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseQuickAdd(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseQuickAdd(%q) unexpected error: %v", tt.line, err)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.StartTime != tt.wantStart || got.EndTime != tt.wantEnd {
				t.Errorf("times = %s-%s, want %s-%s", got.StartTime, got.EndTime, tt.wantStart, tt.wantEnd)
			}
			if !dateutil.SameDay(got.Date, day) {
				t.Errorf("Date = %v, want %v", got.Date, day)
			}
		})
	}
}

func TestNudgeSchedule(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		delta      int
		wantDate   string
		wantStart  string
		wantEnd    string
	}{
		{
			name:  "forward within the day",
			start: "09:00", end: "10:00", delta: 15,
			wantDate: "2025-01-15", wantStart: "09:15", wantEnd: "10:15",
		},
		{
			name:  "backward within the day",
			start: "09:00", end: "10:00", delta: -15,
			wantDate: "2025-01-15", wantStart: "08:45", wantEnd: "09:45",
		},
		{
			name:  "forward across midnight moves to the next day",
			start: "23:50", end: "23:55", delta: 15,
			wantDate: "2025-01-16", wantStart: "00:05", wantEnd: "00:10",
		},
		{
			name:  "backward across midnight moves to the previous day",
			start: "00:05", end: "00:35", delta: -15,
			wantDate: "2025-01-14", wantStart: "23:50", wantEnd: "00:20",
		},
		{
			name:  "forward into a wraparound",
			start: "23:30", end: "23:50", delta: 15,
			wantDate: "2025-01-15", wantStart: "23:45", wantEnd: "00:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, start, end := nudgeSchedule(day, tt.start, tt.end, tt.delta)
			if got := dateutil.FormatDate(date); got != tt.wantDate {
				t.Errorf("date = %s, want %s", got, tt.wantDate)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("times = %s-%s, want %s-%s", start, end, tt.wantStart, tt.wantEnd)
			}
			if got := task.Duration(start, end); got != task.Duration(tt.start, tt.end) {
				t.Errorf("duration changed: %d, want %d", got, task.Duration(tt.start, tt.end))
			}
		})
	}
}

func TestSetSegments(t *testing.T) {
	newTask := func(start, end string) *task.Task {
		tk, err := task.New("t", "2025-01-15", "", start, end)
		if err != nil {
			t.Fatalf("task.New: %v", err)
		}
		return tk
	}
	segmentsOf := func(tasks ...*task.Task) []task.Segment {
		return task.SegmentsForDate(tasks, day)
	}

	var m Model

	m.setSegments(segmentsOf(newTask("09:00", "10:00"), newTask("09:30", "10:30")))
	if len(m.placements) != 2 {
		t.Fatalf("got %d placements, want 2", len(m.placements))
	}
	if m.placements[0].Width != 0.5 || m.placements[1].Left != 0.5 {
		t.Errorf("overlapping segments not laned: %v", m.placements)
	}
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0 after first load", m.selected)
	}

	// Selection clamps when the day shrinks.
	m.selected = 1
	m.setSegments(segmentsOf(newTask("09:00", "10:00")))
	if m.selected != 0 {
		t.Errorf("selected = %d, want clamped to 0", m.selected)
	}

	m.setSegments(nil)
	if m.selected != -1 {
		t.Errorf("selected = %d, want -1 for empty day", m.selected)
	}
	if len(m.placements) != 0 {
		t.Errorf("placements = %v, want empty", m.placements)
	}
}
