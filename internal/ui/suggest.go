package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/llm"
	"github.com/lmoratilla/dayline/internal/suggest"
	"github.com/lmoratilla/dayline/internal/task"
)

func (a *App) suggestCmd() *cobra.Command {
	var (
		date    string
		insight bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest free slots for new work",
		Long: `Find the free slots left in a day and rank them by your recorded
energy profile, best hours first.

With --insight, also asks the configured LLM provider for a short
coaching paragraph about the day's plan.`,
		Example: `  dayline suggest
  dayline suggest --date=tomorrow --insight`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			tasks, err := a.tasks.ListTasksByDateRange(ctx, day, day)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			segments := task.SegmentsForDate(tasks, day)

			weekAgo := dateutil.AddDays(dateutil.TruncateToDay(time.Now()), -28)
			levels, err := a.energy.ListEnergyByDateRange(ctx, weekAgo, day)
			if err != nil {
				return fmt.Errorf("listing energy: %w", err)
			}

			planner := suggest.New(a.config.Schedule.DayStart, a.config.Schedule.DayEnd)
			slots := suggest.Rank(
				planner.FreeSlots(segments, day, a.config.Schedule.MinSlotMinutes),
				levels,
			)

			if len(slots) == 0 {
				fmt.Printf("No free slots of %d+ minutes on %s.\n",
					a.config.Schedule.MinSlotMinutes, dateutil.FormatDate(day))
				return nil
			}

			fmt.Printf("Free slots on %s (best energy first):\n", dateutil.FormatDate(day))
			for _, s := range slots {
				line := fmt.Sprintf("  %s-%s  %s", s.Start, s.End, formatMinutes(s.Minutes))
				if s.Energy > 0 {
					line += formatMuted(fmt.Sprintf("  energy %.1f", s.Energy))
				}
				fmt.Println(line)
			}

			if insight {
				return a.printInsight(ctx, segments, slots)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to plan (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().BoolVar(&insight, "insight", false, "Ask the LLM for advice about the plan")

	return cmd
}

func (a *App) printInsight(ctx context.Context, segments []task.Segment, slots []suggest.Slot) error {
	client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	text, err := llm.DayInsight(ctx, client, segments, slots)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(formatInsight(text))
	return nil
}
