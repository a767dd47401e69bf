// Package stats aggregates completion and scheduling analytics over
// tasks and energy readings.
package stats

import (
	"time"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/energy"
	"github.com/lmoratilla/dayline/internal/task"
)

// DayStats holds analytics for a single day.
type DayStats struct {
	Date             time.Time
	ScheduledBlocks  int // segments visible on the day
	ScheduledMinutes int // segment-clipped, so multi-day tasks count only their share
	CompletedBlocks  int
	AverageEnergy    float64
}

// CompletionPercent returns completed blocks as a 0-100 percentage.
func (s DayStats) CompletionPercent() int {
	if s.ScheduledBlocks == 0 {
		return 0
	}
	return (s.CompletedBlocks * 100) / s.ScheduledBlocks
}

// ForDay computes analytics for one day from the full task list and
// the day's energy readings. Multi-day tasks contribute only the
// minutes of the segment that falls on the day.
func ForDay(tasks []*task.Task, levels []energy.Level, date time.Time) DayStats {
	s := DayStats{Date: dateutil.TruncateToDay(date)}

	for _, seg := range task.SegmentsForDate(tasks, date) {
		s.ScheduledBlocks++
		s.ScheduledMinutes += task.Duration(seg.StartTime, seg.EndTime)
		if seg.Task.Completed {
			s.CompletedBlocks++
		}
	}

	var dayLevels []energy.Level
	for _, l := range levels {
		if dateutil.SameDay(l.Date, date) {
			dayLevels = append(dayLevels, l)
		}
	}
	s.AverageEnergy = energy.Average(dayLevels)

	return s
}

// WeekStats holds per-day analytics for a Monday-based week.
type WeekStats struct {
	Start time.Time
	End   time.Time
	Days  [7]DayStats
}

// TotalScheduledMinutes sums scheduled minutes across the week.
func (w WeekStats) TotalScheduledMinutes() int {
	total := 0
	for _, d := range w.Days {
		total += d.ScheduledMinutes
	}
	return total
}

// CompletionPercent returns the week's completed blocks as a 0-100
// percentage of all scheduled blocks.
func (w WeekStats) CompletionPercent() int {
	blocks, completed := 0, 0
	for _, d := range w.Days {
		blocks += d.ScheduledBlocks
		completed += d.CompletedBlocks
	}
	if blocks == 0 {
		return 0
	}
	return (completed * 100) / blocks
}

// ForWeek computes per-day analytics for the ISO week containing ref.
func ForWeek(tasks []*task.Task, levels []energy.Level, ref time.Time) WeekStats {
	monday, sunday := dateutil.WeekRange(ref)
	w := WeekStats{Start: monday, End: sunday}
	for i := range w.Days {
		w.Days[i] = ForDay(tasks, levels, dateutil.AddDays(monday, i))
	}
	return w
}
