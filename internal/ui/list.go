package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a date range",
		Long: `List all task blocks visible within a date range, day by day.

Multi-day tasks appear once per day they touch, marked with
(starts), (continues) or (ends).

If no dates are specified, lists today's blocks.`,
		Example: `  dayline list
  dayline list --start=2025-01-15
  dayline list --start=2025-01-15 --end=2025-01-20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			tasks, err := a.tasks.ListTasksByDateRange(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			days := dateutil.DaysBetween(dateRange.Start, dateRange.End)
			printed := false
			for i := 0; i <= days; i++ {
				date := dateutil.AddDays(dateRange.Start, i)
				segments := task.SegmentsForDate(tasks, date)
				if len(segments) == 0 {
					continue
				}
				if printed {
					fmt.Println()
				}
				printed = true

				fmt.Printf("=== %s ===\n", dateutil.FormatDate(date))
				for _, seg := range segments {
					fmt.Println("  " + formatSegmentLine(seg))
				}
			}

			if !printed {
				fmt.Println("No tasks found in the specified date range.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}
