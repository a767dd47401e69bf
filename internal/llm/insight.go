package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/suggest"
	"github.com/lmoratilla/dayline/internal/task"
)

const insightSystemPrompt = `You are a pragmatic productivity coach reviewing one day of a personal planner.
Given the day's scheduled blocks and the free slots ranked by the user's recorded energy,
write one short paragraph (3-4 sentences) of concrete advice: what to tackle in the
highest-energy free slot, and anything risky about the current plan. Plain text only.`

// DayInsight asks the model for a short coaching paragraph over the
// day's segments and ranked free slots.
func DayInsight(ctx context.Context, client Client, segments []task.Segment, slots []suggest.Slot) (string, error) {
	var b strings.Builder

	if len(segments) == 0 {
		b.WriteString("No blocks scheduled.\n")
	}
	for _, seg := range segments {
		status := "pending"
		if seg.Task.Completed {
			status = "done"
		}
		fmt.Fprintf(&b, "- %s %s-%s [%s]\n", seg.Label(), seg.StartTime, seg.EndTime, status)
	}

	b.WriteString("\nFree slots (best energy first):\n")
	if len(slots) == 0 {
		b.WriteString("none\n")
	}
	for _, s := range slots {
		fmt.Fprintf(&b, "- %s %s-%s (%d min, energy %.1f)\n",
			dateutil.FormatDate(s.Date), s.Start, s.End, s.Minutes, s.Energy)
	}

	reply, err := client.Chat(ctx, []Message{
		{Role: "system", Content: insightSystemPrompt},
		{Role: "user", Content: b.String()},
	})
	if err != nil {
		return "", fmt.Errorf("generating insight: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
