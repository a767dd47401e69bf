package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		date  string
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Reschedule a task",
		Long: `Move a task to a new start time, and optionally a new day.

When only --start is given the task keeps its duration. The date may
be absolute or relative (tomorrow, next-monday).`,
		Example: `  dayline move 3f2a --start=14:00
  dayline move 3f2a --date=tomorrow --start=09:00 --end=10:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := a.resolveTask(ctx, args[0])
			if err != nil {
				return err
			}

			newDate := t.Date
			if date != "" {
				newDate, err = dateutil.ParseRelativeDate(date, time.Now())
				if err != nil {
					return err
				}
			}

			newStart := t.StartTime
			if start != "" {
				newStart = start
			}
			newEnd := end
			if newEnd == "" {
				// Keep the original duration from the new start.
				duration := task.Duration(t.StartTime, t.EndTime)
				newEnd = task.MinutesToTime((task.TimeToMinutes(newStart) + duration) % task.MinutesPerDay)
			}

			// Validate through the domain constructor before touching storage.
			if _, err := task.New(t.Title, dateutil.FormatDate(newDate), "", newStart, newEnd); err != nil {
				return err
			}

			if err := a.tasks.RescheduleTask(ctx, t.ID, newDate, newStart, newEnd); err != nil {
				return fmt.Errorf("rescheduling task: %w", err)
			}

			fmt.Printf("Moved %s: %s → %s %s-%s\n",
				shortID(t.ID), t.Title, dateutil.FormatDate(newDate), newStart, newEnd)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "New start date (YYYY-MM-DD or relative)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM, default keeps duration)")

	return cmd
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := a.resolveTask(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.tasks.DeleteTask(ctx, t.ID); err != nil {
				return fmt.Errorf("deleting task: %w", err)
			}
			fmt.Printf("Deleted %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
}
