package task

import "fmt"

// MinutesPerDay is the number of minutes in a 24-hour day.
const MinutesPerDay = 24 * 60

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SpansNextDay returns true if a time range crosses midnight,
// i.e. the end time is lexicographically before the start time.
func SpansNextDay(start, end string) bool {
	return start > end
}

// Duration returns the length of a time range in minutes.
// A range whose end is before its start is treated as crossing
// midnight exactly once. This is the canonical wraparound policy
// for the whole planner.
func Duration(start, end string) int {
	s := TimeToMinutes(start)
	e := TimeToMinutes(end)
	if e > s {
		return e - s
	}
	return (MinutesPerDay - s) + e
}

// effectiveEnd returns the end of a range in minutes, pushed past
// midnight when the range wraps.
func effectiveEnd(start, end string) int {
	e := TimeToMinutes(end)
	if SpansNextDay(start, end) {
		return e + MinutesPerDay
	}
	return e
}

// RangesOverlap returns true if two time ranges intersect.
// Ranges are half-open [start, end); a wrapping range has its end
// normalized past midnight before comparison.
func RangesOverlap(start1, end1, start2, end2 string) bool {
	s1 := TimeToMinutes(start1)
	s2 := TimeToMinutes(start2)
	return s1 < effectiveEnd(start2, end2) && effectiveEnd(start1, end1) > s2
}

// OverlapMinutes returns the number of minutes two non-wrapping
// ranges share. Returns 0 if there is no overlap.
func OverlapMinutes(start1, end1, start2, end2 string) int {
	overlapStart := max(TimeToMinutes(start1), TimeToMinutes(start2))
	overlapEnd := min(TimeToMinutes(end1), TimeToMinutes(end2))
	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}
