package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

// gutterWidth is the width of the hour label column, e.g. " 09:00 │".
const gutterWidth = 9

// View renders the timeline.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.loading {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.date.Format("Monday 2006-01-02")))
	b.WriteString("\n\n")

	if len(m.segments) == 0 {
		b.WriteString(m.styles.Empty.Render("nothing scheduled, press a to add a block"))
		b.WriteString("\n")
	}

	track := m.trackWidth()
	startHour, endHour := m.visibleHours()
	for hour := startHour; hour < endHour; hour++ {
		b.WriteString(m.styles.HourRule.Render(fmt.Sprintf(" %02d:00 │", hour)))
		b.WriteString(m.renderHourRow(hour, track))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == ModeAdd {
		b.WriteString("add: " + m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(
		"h/l day · j/k select · a add · space done · J/K move ±15m · t today · y copy · q quit"))

	return b.String()
}

func (m Model) trackWidth() int {
	track := m.width - gutterWidth
	if track < 20 {
		track = 20
	}
	return track
}

// visibleHours returns the half-open hour range shown on screen. The
// configured day bounds are widened to include any block outside them.
func (m Model) visibleHours() (start, end int) {
	start = task.TimeToMinutes(m.config.Schedule.DayStart) / 60
	end = (task.TimeToMinutes(m.config.Schedule.DayEnd) + 59) / 60

	for _, seg := range m.segments {
		s := task.TimeToMinutes(seg.StartTime) / 60
		e := (segmentEndMinutes(seg) + 59) / 60
		start = min(start, s)
		end = max(end, e)
	}
	end = min(end, 24)
	return start, end
}

// segmentEndMinutes returns a segment's end within its own day. A
// wrapping segment (only possible for a clamped reversed range) is
// cut at midnight for display.
func segmentEndMinutes(seg task.Segment) int {
	if task.SpansNextDay(seg.StartTime, seg.EndTime) {
		return task.MinutesPerDay
	}
	return task.TimeToMinutes(seg.EndTime)
}

// renderHourRow paints one hour of the track. Each segment occupies
// the columns its lane geometry assigns; when segments share an hour
// they appear side by side, never stacked.
func (m Model) renderHourRow(hour, track int) string {
	hourStart := hour * 60
	hourEnd := hourStart + 60

	// Resolve column ownership, first segment wins ties.
	owner := make([]int, track)
	for c := range owner {
		owner[c] = -1
	}
	for i, seg := range m.segments {
		if task.TimeToMinutes(seg.StartTime) >= hourEnd || segmentEndMinutes(seg) <= hourStart {
			continue
		}
		from := int(m.placements[i].Left * float64(track))
		to := int((m.placements[i].Left + m.placements[i].Width) * float64(track))
		to = min(to, track)
		if to <= from {
			to = min(from+1, track)
		}
		for c := from; c < to; c++ {
			if owner[c] == -1 {
				owner[c] = i
			}
		}
	}

	// Paint runs of equal ownership.
	var b strings.Builder
	for c := 0; c < track; {
		run := c
		for run < track && owner[run] == owner[c] {
			run++
		}
		width := run - c

		if owner[c] == -1 {
			b.WriteString(strings.Repeat(" ", width))
		} else {
			seg := m.segments[owner[c]]
			text := ""
			if hour == m.labelHour(owner[c]) {
				text = " " + seg.Label()
				if seg.Task.Emoji != "" {
					text = " " + seg.Task.Emoji + " " + seg.Label()
				}
			}
			text = ansi.Truncate(text, width, "…")
			if pad := width - ansi.StringWidth(text); pad > 0 {
				text += strings.Repeat(" ", pad)
			}
			b.WriteString(m.segmentStyle(owner[c])(text))
		}
		c = run
	}
	return b.String()
}

// labelHour is the first visible hour of a segment, where its title
// is drawn.
func (m Model) labelHour(i int) int {
	startHour, _ := m.visibleHours()
	return max(task.TimeToMinutes(m.segments[i].StartTime)/60, startHour)
}

func (m Model) segmentStyle(i int) func(...string) string {
	seg := m.segments[i]
	switch {
	case i == m.selected:
		return m.styles.Selected.Render
	case seg.Task.Completed:
		return m.styles.Done.Render
	case !seg.IsFirstDay || !seg.IsLastDay:
		return m.styles.Span.Render
	default:
		return m.styles.Block.Render
	}
}

// plainView renders the day as unstyled text, for the clipboard.
func (m Model) plainView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", dateutil.FormatDate(m.date))
	for _, seg := range m.segments {
		mark := " "
		if seg.Task.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s-%s %s\n", mark, seg.StartTime, seg.EndTime, seg.Label())
	}
	return b.String()
}
