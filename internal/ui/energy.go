package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/energy"
)

func (a *App) energyCmd() *cobra.Command {
	var (
		date string
		hour int
	)

	cmd := &cobra.Command{
		Use:   "energy [level]",
		Short: "Record or inspect energy levels",
		Long: `Record how energetic you feel on a 1 (drained) to 5 (peak) scale.

One reading is kept per hour per day; recording again overwrites it.
Without arguments, shows the last week's hourly averages.`,
		Example: `  dayline energy 4
  dayline energy 2 --hour=15 --date=2025-01-14
  dayline energy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				return a.printEnergyProfile(ctx)
			}

			value, err := strconv.Atoi(args[0])
			if err != nil {
				return energy.ErrInvalidLevel
			}

			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("hour") {
				hour = time.Now().Hour()
			}

			level, err := energy.NewLevel(day, hour, value)
			if err != nil {
				return err
			}
			if err := a.energy.RecordEnergy(ctx, level); err != nil {
				return fmt.Errorf("recording energy: %w", err)
			}

			fmt.Printf("Recorded energy %d for %s %02d:00\n",
				value, dateutil.FormatDate(day), hour)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of the reading (YYYY-MM-DD, default: today)")
	cmd.Flags().IntVar(&hour, "hour", 0, "Hour of the reading (0-23, default: current hour)")

	return cmd
}

// printEnergyProfile prints last week's average energy per hour.
func (a *App) printEnergyProfile(ctx context.Context) error {
	today := dateutil.TruncateToDay(time.Now())
	levels, err := a.energy.ListEnergyByDateRange(ctx, dateutil.AddDays(today, -6), today)
	if err != nil {
		return fmt.Errorf("listing energy: %w", err)
	}
	if len(levels) == 0 {
		fmt.Println("No energy recorded in the last week.")
		return nil
	}

	byHour := energy.ByHour(levels)
	fmt.Println("Average energy by hour (last 7 days):")
	for h := 0; h < 24; h++ {
		avg, ok := byHour[h]
		if !ok {
			continue
		}
		bar := strings.Repeat("▇", int(avg+0.5))
		fmt.Printf("  %02d:00 %s %s\n", h, formatStats(bar), formatMuted(fmt.Sprintf("%.1f", avg)))
	}
	return nil
}
