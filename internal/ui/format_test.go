package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/lmoratilla/dayline/internal/task"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "uuid truncates", input: "2b3c4d5e-6f70-4a81-9b92-a3b4c5d6e7f8", want: "2b3c4d5e"},
		{name: "short id untouched", input: "abc", want: "abc"},
		{name: "exactly eight", input: "12345678", want: "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortID(tt.input); got != tt.want {
				t.Errorf("shortID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveSubtask(t *testing.T) {
	subs := []task.SubTask{
		{
			ID:    "aa11",
			Title: "research",
			Children: []task.SubTask{
				{ID: "aa22", Title: "read docs"},
			},
		},
		{ID: "bb33", Title: "write draft"},
	}

	tests := []struct {
		name    string
		prefix  string
		wantID  string
		wantErr bool
	}{
		{name: "id prefix", prefix: "bb", wantID: "bb33"},
		{name: "nested id prefix", prefix: "aa2", wantID: "aa22"},
		{name: "title prefix", prefix: "write", wantID: "bb33"},
		{name: "title prefix is case insensitive", prefix: "Read", wantID: "aa22"},
		{name: "ambiguous id prefix", prefix: "aa", wantErr: true},
		{name: "no match", prefix: "zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSubtask(subs, tt.prefix)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveSubtask(%q) = %v, want error", tt.prefix, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveSubtask(%q) unexpected error: %v", tt.prefix, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("resolveSubtask(%q).ID = %q, want %q", tt.prefix, got.ID, tt.wantID)
			}
		})
	}
}

func TestCheckbox(t *testing.T) {
	if got := checkbox(true); got != "[x]" {
		t.Errorf("checkbox(true) = %q", got)
	}
	if got := checkbox(false); got != "[ ]" {
		t.Errorf("checkbox(false) = %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{input: 0, want: "0h 00m"},
		{input: 45, want: "0h 45m"},
		{input: 60, want: "1h 00m"},
		{input: 135, want: "2h 15m"},
		{input: 1439, want: "23h 59m"},
	}

	for _, tt := range tests {
		if got := formatMinutes(tt.input); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderDay(t *testing.T) {
	day := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	a, err := task.New("deep work", "2025-01-15", "", "09:00", "11:00")
	if err != nil {
		t.Fatal(err)
	}
	b, err := task.New("call", "2025-01-15", "", "10:00", "10:30")
	if err != nil {
		t.Fatal(err)
	}
	b.Completed = true

	out := renderDay(day, task.SegmentsForDate([]*task.Task{a, b}, day))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 segments:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "2025-01-15") || !strings.Contains(lines[0], "2 block(s)") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "09:00-11:00") || !strings.Contains(lines[1], "[ ]") {
		t.Errorf("first segment line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "10:00-10:30") || !strings.Contains(lines[2], "[x]") {
		t.Errorf("second segment line = %q", lines[2])
	}

	// The overlapping pair shares the track: the second bar starts at
	// the half-way column, after the first bar's lane.
	if !strings.Contains(lines[2], strings.Repeat(" ", trackWidth/2)+strings.Repeat("█", trackWidth/2)) {
		t.Errorf("second segment not placed in the right lane: %q", lines[2])
	}
}

func TestRenderDayEmpty(t *testing.T) {
	day := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	out := renderDay(day, nil)
	if !strings.Contains(out, "0 block(s)") {
		t.Errorf("empty day render = %q", out)
	}
}
