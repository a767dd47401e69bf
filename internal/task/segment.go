package task

import (
	"time"

	"github.com/lmoratilla/dayline/internal/dateutil"
)

// Clipping bounds for per-day segments.
const (
	StartOfDay = "00:00"
	EndOfDay   = "23:59"
)

// Segment is an ephemeral projection of exactly one task onto exactly
// one calendar day. Segments are recomputed on every read and never
// stored; they share the source task by pointer, so completion state
// is always observed through the task itself.
type Segment struct {
	Task       *Task
	Date       time.Time // the calendar day this segment represents
	IsFirstDay bool
	IsLastDay  bool
	StartTime  string // clipped "HH:MM" within Date
	EndTime    string // clipped "HH:MM" within Date
}

// TimeRange returns the segment's clipped times. It satisfies the
// layout engine's item contract.
func (s Segment) TimeRange() (start, end string) {
	return s.StartTime, s.EndTime
}

// Marker returns the segment's multi-day suffix: "(starts)" on the
// first day, "(ends)" on the last, "(continues)" in between. Empty
// for a single-day segment.
func (s Segment) Marker() string {
	switch {
	case s.IsFirstDay && s.IsLastDay:
		return ""
	case s.IsFirstDay:
		return "(starts)"
	case s.IsLastDay:
		return "(ends)"
	default:
		return "(continues)"
	}
}

// Label returns the task title suffixed with the segment's marker.
func (s Segment) Label() string {
	if marker := s.Marker(); marker != "" {
		return s.Task.Title + " " + marker
	}
	return s.Task.Title
}

// Split expands a task into its ordered per-day segments, one per
// calendar day from the start date to the effective end date
// inclusive. A single-day task yields exactly one segment carrying
// the task's own times. A reversed date range (end date before start
// date, which New rejects) is clamped to a single-day segment rather
// than producing an empty or reversed day range.
func Split(t *Task) []Segment {
	if !t.IsMultiDay() {
		return []Segment{{
			Task:       t,
			Date:       dateutil.TruncateToDay(t.Date),
			IsFirstDay: true,
			IsLastDay:  true,
			StartTime:  t.StartTime,
			EndTime:    t.EndTime,
		}}
	}

	start := dateutil.TruncateToDay(t.Date)
	days := dateutil.DaysBetween(start, t.EffectiveEndDate())
	if days < 0 {
		days = 0
	}

	segments := make([]Segment, 0, days+1)
	for i := 0; i <= days; i++ {
		seg := Segment{
			Task:       t,
			Date:       dateutil.AddDays(start, i),
			IsFirstDay: i == 0,
			IsLastDay:  i == days,
			StartTime:  StartOfDay,
			EndTime:    EndOfDay,
		}
		if seg.IsFirstDay {
			seg.StartTime = t.StartTime
		}
		if seg.IsLastDay {
			seg.EndTime = t.EndTime
		}
		segments = append(segments, seg)
	}
	return segments
}

// SegmentsForDate expands every task and keeps the segments that fall
// on the given day, preserving input task order. It is a pure function
// of its arguments; callers invoke it once per rendered day.
func SegmentsForDate(tasks []*Task, date time.Time) []Segment {
	var result []Segment
	for _, t := range tasks {
		for _, seg := range Split(t) {
			if dateutil.SameDay(seg.Date, date) {
				result = append(result, seg)
			}
		}
	}
	return result
}

// ProgressOn reports the task's progress as seen on the given day.
// Single-day tasks are all-or-nothing. A multi-day task never reports
// full completion before its last day; from the last day onward the
// completed flag wins, falling back to user-reported progress.
func ProgressOn(t *Task, date time.Time) int {
	if !t.IsMultiDay() {
		if t.Completed {
			return 100
		}
		return 0
	}

	end := t.EffectiveEndDate()
	if dateutil.TruncateToDay(date).Before(end) {
		return t.Progress
	}
	if t.Completed {
		return 100
	}
	return t.Progress
}
