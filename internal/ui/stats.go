package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/stats"
)

func (a *App) statsCmd() *cobra.Command {
	var (
		date string
		week bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion and scheduling analytics",
		Long: `Show analytics for a day, or for the whole ISO week with --week.

Multi-day tasks count only the minutes of the segment that falls on
each day.`,
		Example: `  dayline stats
  dayline stats --date=2025-01-15
  dayline stats --week`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			if week {
				return a.printWeekStats(ctx, day)
			}
			return a.printDayStats(ctx, day)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&week, "week", false, "Show the whole ISO week")

	return cmd
}

func (a *App) printDayStats(ctx context.Context, day time.Time) error {
	tasks, err := a.tasks.ListTasksByDateRange(ctx, day, day)
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	levels, err := a.energy.ListEnergyByDateRange(ctx, day, day)
	if err != nil {
		return fmt.Errorf("listing energy: %w", err)
	}

	s := stats.ForDay(tasks, levels, day)
	fmt.Printf("%s\n", dateutil.FormatDate(s.Date))
	fmt.Printf("  Blocks:     %s\n", formatStats(fmt.Sprintf("%d scheduled, %d completed (%d%%)",
		s.ScheduledBlocks, s.CompletedBlocks, s.CompletionPercent())))
	fmt.Printf("  Scheduled:  %s\n", formatStats(formatMinutes(s.ScheduledMinutes)))
	if s.AverageEnergy > 0 {
		fmt.Printf("  Energy:     %s\n", formatStats(fmt.Sprintf("%.1f / 5", s.AverageEnergy)))
	}
	return nil
}

func (a *App) printWeekStats(ctx context.Context, ref time.Time) error {
	monday, sunday := dateutil.WeekRange(ref)
	tasks, err := a.tasks.ListTasksByDateRange(ctx, monday, sunday)
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	levels, err := a.energy.ListEnergyByDateRange(ctx, monday, sunday)
	if err != nil {
		return fmt.Errorf("listing energy: %w", err)
	}

	w := stats.ForWeek(tasks, levels, ref)
	fmt.Printf("Week %s — %s\n", dateutil.FormatDate(w.Start), dateutil.FormatDate(w.End))
	for _, d := range w.Days {
		if d.ScheduledBlocks == 0 {
			continue
		}
		fmt.Printf("  %s  %2d blocks  %s  %3d%% done\n",
			d.Date.Format("Mon"),
			d.ScheduledBlocks,
			formatMinutes(d.ScheduledMinutes),
			d.CompletionPercent(),
		)
	}
	fmt.Printf("Total: %s scheduled, %d%% completed\n",
		formatStats(formatMinutes(w.TotalScheduledMinutes())),
		w.CompletionPercent(),
	)
	return nil
}
