// Package suggest finds free timeline slots and ranks them by the
// user's recorded energy.
package suggest

import (
	"sort"
	"time"

	"github.com/lmoratilla/dayline/internal/energy"
	"github.com/lmoratilla/dayline/internal/task"
)

// Slot is a free stretch of a day worth proposing for new work.
type Slot struct {
	Date    time.Time
	Start   string // "HH:MM"
	End     string // "HH:MM"
	Minutes int
	Energy  float64 // mean recorded energy over the covered hours, 0 if unknown
}

// Planner proposes free slots within configured day bounds.
type Planner struct {
	dayStart int // minutes from midnight
	dayEnd   int
}

// New creates a Planner bounded by dayStart and dayEnd ("HH:MM").
func New(dayStart, dayEnd string) *Planner {
	return &Planner{
		dayStart: task.TimeToMinutes(dayStart),
		dayEnd:   task.TimeToMinutes(dayEnd),
	}
}

// FreeSlots returns the gaps between the day's segments inside the
// planner's day bounds, keeping only gaps of at least minMinutes.
// Segments outside the bounds are clipped, not ignored.
func (p *Planner) FreeSlots(segments []task.Segment, date time.Time, minMinutes int) []Slot {
	type span struct{ start, end int }

	var busy []span
	for _, seg := range segments {
		s := task.TimeToMinutes(seg.StartTime)
		e := task.TimeToMinutes(seg.EndTime)
		if task.SpansNextDay(seg.StartTime, seg.EndTime) {
			e = task.MinutesPerDay
		}
		s = max(s, p.dayStart)
		e = min(e, p.dayEnd)
		if s < e {
			busy = append(busy, span{s, e})
		}
	}
	sort.Slice(busy, func(a, b int) bool { return busy[a].start < busy[b].start })

	var slots []Slot
	cursor := p.dayStart
	emit := func(start, end int) {
		if end-start >= minMinutes {
			slots = append(slots, Slot{
				Date:    date,
				Start:   task.MinutesToTime(start),
				End:     task.MinutesToTime(end),
				Minutes: end - start,
			})
		}
	}
	for _, b := range busy {
		if b.start > cursor {
			emit(cursor, b.start)
		}
		cursor = max(cursor, b.end)
	}
	if cursor < p.dayEnd {
		emit(cursor, p.dayEnd)
	}
	return slots
}

// Rank scores each slot by the mean recorded energy over the hours it
// covers and sorts best-first; ties go to the longer slot. Slots over
// hours with no readings score 0 and sink to the end.
func Rank(slots []Slot, levels []energy.Level) []Slot {
	byHour := energy.ByHour(levels)

	ranked := make([]Slot, len(slots))
	copy(ranked, slots)
	for i := range ranked {
		ranked[i].Energy = slotEnergy(ranked[i], byHour)
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Energy != ranked[b].Energy {
			return ranked[a].Energy > ranked[b].Energy
		}
		return ranked[a].Minutes > ranked[b].Minutes
	})
	return ranked
}

// slotEnergy averages the hourly energy over the hours a slot touches.
func slotEnergy(s Slot, byHour map[int]float64) float64 {
	first := task.TimeToMinutes(s.Start) / 60
	last := (task.TimeToMinutes(s.End) - 1) / 60

	sum, n := 0.0, 0
	for h := first; h <= last; h++ {
		if avg, ok := byHour[h]; ok {
			sum += avg
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
