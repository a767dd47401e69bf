package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/layout"
	"github.com/lmoratilla/dayline/internal/task"
)

// shortID returns the first 8 characters of a task id, enough to be
// unambiguous for a single user's planner.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveTask finds a task by full id or unique prefix, scanning a
// year around today. Single-user data volumes make this cheap.
func (a *App) resolveTask(ctx context.Context, prefix string) (*task.Task, error) {
	today := dateutil.TruncateToDay(time.Now())
	tasks, err := a.tasks.ListTasksByDateRange(ctx,
		dateutil.AddDays(today, -365), dateutil.AddDays(today, 365))
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var match *task.Task
	for _, t := range tasks {
		if !strings.HasPrefix(t.ID, prefix) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id prefix %q is ambiguous", prefix)
		}
		match = t
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", task.ErrTaskNotFound, prefix)
	}
	return match, nil
}

// resolveSubtask finds a subtask anywhere in a task's checklist tree
// by id prefix or case-insensitive title prefix.
func resolveSubtask(subs []task.SubTask, prefix string) (*task.SubTask, error) {
	lower := strings.ToLower(prefix)

	var match *task.SubTask
	ambiguous := false
	task.WalkSubtasks(subs, func(s *task.SubTask) bool {
		if !strings.HasPrefix(s.ID, prefix) &&
			!strings.HasPrefix(strings.ToLower(s.Title), lower) {
			return true
		}
		if match != nil {
			ambiguous = true
			return false
		}
		match = s
		return true
	})

	if ambiguous {
		return nil, fmt.Errorf("subtask %q is ambiguous", prefix)
	}
	if match == nil {
		return nil, fmt.Errorf("no subtask matches %q", prefix)
	}
	return match, nil
}

// checkbox renders a completion marker.
func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// trackWidth is the character width of the rendered lane track.
const trackWidth = 40

// renderDay renders a day's segments as a plain-text timeline. Each
// line shows the clipped time range and a bar positioned by the
// overlap layout engine, so colliding tasks appear side by side.
func renderDay(date time.Time, segments []task.Segment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %d block(s)\n", dateutil.FormatDate(date), len(segments))

	items := make([]layout.Item, len(segments))
	for i, seg := range segments {
		items[i] = seg
	}
	placements := layout.Compute(items)

	for i, seg := range segments {
		p := placements[i]
		indent := int(p.Left * trackWidth)
		bar := int(p.Width * trackWidth)
		if bar < 1 {
			bar = 1
		}

		track := strings.Repeat(" ", indent) + strings.Repeat("█", bar)
		if pad := trackWidth - len([]rune(track)); pad > 0 {
			track += strings.Repeat(" ", pad)
		}

		title := seg.Label()
		if seg.Task.Emoji != "" {
			title = seg.Task.Emoji + " " + title
		}
		fmt.Fprintf(&b, "%s-%s %s %s %s %s\n",
			seg.StartTime,
			seg.EndTime,
			checkbox(seg.Task.Completed),
			track,
			shortID(seg.Task.ID),
			title,
		)
	}

	return b.String()
}

// formatSegmentLine renders a one-line summary of a segment for list
// output, colored by state.
func formatSegmentLine(seg task.Segment) string {
	title := seg.Task.Title
	if seg.Task.Emoji != "" {
		title = seg.Task.Emoji + " " + title
	}

	line := fmt.Sprintf("%s %s-%s %s %s",
		checkbox(seg.Task.Completed),
		seg.StartTime, seg.EndTime,
		shortID(seg.Task.ID),
		formatTitle(title),
	)
	if seg.Task.Completed {
		line = formatDone(line)
	}

	if marker := seg.Marker(); marker != "" {
		line += " " + formatSpan(marker)
	}

	if total, done := task.CountSubtasks(seg.Task.Subtasks); total > 0 {
		line += " " + formatMuted(fmt.Sprintf("%d/%d subtasks", done, total))
	}

	return line
}

// formatMinutes renders a minute count as "Xh YYm".
func formatMinutes(m int) string {
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}
