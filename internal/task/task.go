// Package task defines the core domain types for dayline.
package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lmoratilla/dayline/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Task represents a scheduled unit of work placed on the timeline.
// StartTime and EndTime are wall-clock "HH:MM" strings; an end before
// the start means the task wraps past midnight. EndDate is the zero
// time for tasks that start and end on the same calendar day.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        time.Time // calendar day the task starts on
	EndDate     time.Time // optional; zero means same as Date
	StartTime   string    // "HH:MM" format
	EndTime     string    // "HH:MM" format
	Completed   bool
	Progress    int    // 0-100, user-reported progress for long tasks
	Color       string // presentation payload, carried through unchanged
	Emoji       string // presentation payload, carried through unchanged
	Subtasks    []SubTask
	CreatedAt   time.Time
}

// New creates a new Task with validation.
// date and endDate are YYYY-MM-DD (date may be empty for today,
// endDate may be empty for a same-day task). start and end are HH:MM;
// an end before the start is valid and means the task crosses midnight.
// Returns dateutil.ErrEndDateBeforeStart when endDate precedes date.
func New(title, date, endDate, start, end string) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	dates, err := dateutil.NewDateRange(date, endDate)
	if err != nil {
		return nil, err
	}

	if err := validateTimeFormat(start); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	if err := validateTimeFormat(end); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	t := &Task{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      dates.Start,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now(),
	}
	if endDate != "" && !dateutil.SameDay(dates.End, dates.Start) {
		t.EndDate = dates.End
	}
	return t, nil
}

func validateTimeFormat(s string) error {
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsMultiDay returns true if the task occupies more than one calendar
// day, either because its end date differs from its start date or
// because its time-of-day wraps past midnight.
func (t *Task) IsMultiDay() bool {
	if !t.EndDate.IsZero() && !dateutil.SameDay(t.EndDate, t.Date) {
		return true
	}
	return SpansNextDay(t.StartTime, t.EndTime)
}

// EffectiveEndDate returns the calendar day the task actually ends on:
// the explicit end date when one is set, the day after the start when
// the time-of-day wraps, and the start day otherwise.
func (t *Task) EffectiveEndDate() time.Time {
	if !t.EndDate.IsZero() && !dateutil.SameDay(t.EndDate, t.Date) {
		return dateutil.TruncateToDay(t.EndDate)
	}
	if SpansNextDay(t.StartTime, t.EndTime) {
		return dateutil.AddDays(t.Date, 1)
	}
	return dateutil.TruncateToDay(t.Date)
}

// Duration returns the task duration in minutes, wraparound-aware
// for same-day tasks. Multi-day tasks report the full span across
// all occupied days.
func (t *Task) Duration() int {
	days := dateutil.DaysBetween(t.Date, t.EffectiveEndDate())
	if days <= 0 {
		return Duration(t.StartTime, t.EndTime)
	}
	first := MinutesPerDay - TimeToMinutes(t.StartTime)
	last := TimeToMinutes(t.EndTime)
	return first + (days-1)*MinutesPerDay + last
}

// OverlapsWith returns true if this task overlaps another on the same
// start day, using the wraparound-aware range predicate.
func (t *Task) OverlapsWith(other *Task) bool {
	if other == nil {
		return false
	}
	if !dateutil.SameDay(t.Date, other.Date) {
		return false
	}
	return RangesOverlap(t.StartTime, t.EndTime, other.StartTime, other.EndTime)
}

// Conflicts returns the tasks in the list that overlap t on its start
// day, skipping t itself.
func Conflicts(tasks []*Task, t *Task) []*Task {
	var conflicts []*Task
	for _, other := range tasks {
		if other.ID == t.ID {
			continue
		}
		if t.OverlapsWith(other) {
			conflicts = append(conflicts, other)
		}
	}
	return conflicts
}

// TimeRange returns the task's start and end times. It satisfies the
// layout engine's item contract.
func (t *Task) TimeRange() (start, end string) {
	return t.StartTime, t.EndTime
}
