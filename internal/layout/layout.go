// Package layout computes horizontal lane geometry for time-ranged
// items sharing a single calendar day, so that items whose time ranges
// collide never overlap visually.
package layout

import (
	"sort"

	"github.com/lmoratilla/dayline/internal/task"
)

// Item is anything occupying a wall-clock time range within one day.
// Both task.Task and task.Segment satisfy it.
type Item interface {
	TimeRange() (start, end string)
}

// Placement is the fractional horizontal geometry assigned to an item:
// Left and Width are fractions in [0,1] of the available track.
type Placement struct {
	Left  float64
	Width float64
}

// interval is an item's normalized time range plus its input position.
type interval struct {
	index int // position in the input slice
	start int // minutes since midnight
	end   int // effective end, past midnight for wrapping items
}

// Compute assigns a Placement to every item. The result is parallel to
// the input: Placement i belongs to items[i].
//
// Items are sorted by start time (stable, ties keep input order) and
// swept left to right into groups of transitively overlapping items:
// an item joins the current group while it starts before the group's
// running maximum end. Within each group items are placed first-fit
// into lanes, checking every occupant of a lane, and each member of a
// group with N lanes gets Width 1/N and Left lane/N. Grouping by sweep
// rather than exact pairwise clustering is intentional: two items that
// never touch still share a group when a third bridges them.
func Compute(items []Item) []Placement {
	placements := make([]Placement, len(items))
	if len(items) == 0 {
		return placements
	}

	intervals := make([]interval, len(items))
	for i, it := range items {
		start, end := it.TimeRange()
		intervals[i] = interval{
			index: i,
			start: task.TimeToMinutes(start),
			end:   effectiveEnd(start, end),
		}
	}
	sort.SliceStable(intervals, func(a, b int) bool {
		return intervals[a].start < intervals[b].start
	})

	var group []interval
	maxEnd := -1
	for _, iv := range intervals {
		if len(group) > 0 && iv.start >= maxEnd {
			placeGroup(group, placements)
			group = group[:0]
			maxEnd = -1
		}
		group = append(group, iv)
		maxEnd = max(maxEnd, iv.end)
	}
	placeGroup(group, placements)

	return placements
}

// placeGroup assigns lanes within one overlap group and writes the
// resulting geometry back through the input indices.
func placeGroup(group []interval, placements []Placement) {
	if len(group) == 0 {
		return
	}

	var lanes [][]interval
	lane := make([]int, len(group))

	for i, iv := range group {
		placed := false
		for l := range lanes {
			if laneAdmits(lanes[l], iv) {
				lanes[l] = append(lanes[l], iv)
				lane[i] = l
				placed = true
				break
			}
		}
		if !placed {
			lanes = append(lanes, []interval{iv})
			lane[i] = len(lanes) - 1
		}
	}

	width := 1.0 / float64(len(lanes))
	for i, iv := range group {
		placements[iv.index] = Placement{
			Left:  float64(lane[i]) * width,
			Width: width,
		}
	}
}

// laneAdmits returns true if iv overlaps none of the lane's occupants.
func laneAdmits(occupants []interval, iv interval) bool {
	for _, occ := range occupants {
		if iv.start < occ.end && iv.end > occ.start {
			return false
		}
	}
	return true
}

// effectiveEnd normalizes a range's end to minutes, pushed past
// midnight when the range wraps.
func effectiveEnd(start, end string) int {
	e := task.TimeToMinutes(end)
	if task.SpansNextDay(start, end) {
		return e + task.MinutesPerDay
	}
	return e
}
