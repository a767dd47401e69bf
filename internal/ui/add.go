package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		endDate  string
		start    string
		end      string
		emoji    string
		cl       string
		subtasks []string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task to the timeline",
		Long: `Add a new task to the timeline.

A task whose end time is before its start time crosses midnight.
Use --end-date for tasks spanning several days.

Example:
  dayline add "Write documentation" --date=2025-01-10 --start=09:00 --end=11:00
  dayline add "Night shift" --start=23:00 --end=01:00
  dayline add "Conference" --date=2025-01-10 --end-date=2025-01-12 --start=10:00 --end=14:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			t, err := task.New(args[0], date, endDate, start, end)
			if err != nil {
				return err
			}
			t.Emoji = emoji
			t.Color = cl
			for _, title := range subtasks {
				t.Subtasks = append(t.Subtasks, task.NewSubTask(title))
			}

			if err := a.tasks.CreateTask(ctx, t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			span := ""
			if t.IsMultiDay() {
				span = fmt.Sprintf(" (until %s)", dateutil.FormatDate(t.EffectiveEndDate()))
			}
			fmt.Printf("Created %s: %s %s %s-%s%s\n",
				shortID(t.ID),
				t.Title,
				dateutil.FormatDate(t.Date),
				t.StartTime,
				t.EndTime,
				span,
			)

			// Overlaps are allowed, the lane layout draws them side
			// by side, but they are worth a heads-up.
			existing, err := a.tasks.ListTasksByDateRange(ctx, t.Date, t.Date)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			for _, other := range task.Conflicts(existing, t) {
				overlap := task.OverlapMinutes(t.StartTime, t.EndTime, other.StartTime, other.EndTime)
				fmt.Printf("  %s\n", formatMuted(fmt.Sprintf("overlaps %s %s-%s by %s",
					other.Title, other.StartTime, other.EndTime, formatMinutes(overlap))))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Start date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date for multi-day tasks (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Emoji shown next to the title")
	cmd.Flags().StringVar(&cl, "color", "", "Block color (hex or name, passed to the view)")
	cmd.Flags().StringArrayVar(&subtasks, "subtask", nil, "Subtask title (repeatable)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
