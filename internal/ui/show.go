package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/task"
)

func (a *App) showCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show one day as a laid-out timeline",
		Long: `Show a single day with every block positioned by the overlap
layout engine: blocks that collide in time are placed in side-by-side
lanes, exactly as the interactive timeline draws them.

The date may be absolute (YYYY-MM-DD) or relative (today, tomorrow,
monday, next-friday).`,
		Example: `  dayline show
  dayline show tomorrow
  dayline show 2025-01-15 --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dateArg := ""
			if len(args) == 1 {
				dateArg = args[0]
			}
			date, err := dateutil.ParseRelativeDate(dateArg, time.Now())
			if err != nil {
				// Relative parsing rejects past dates; showing history is fine.
				date, err = dateutil.ParseDate(dateArg)
				if err != nil {
					return err
				}
			}

			tasks, err := a.tasks.ListTasksByDateRange(context.Background(), date, date)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			out := renderDay(date, task.SegmentsForDate(tasks, date))
			fmt.Print(out)

			if copyToClipboard {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatMuted("Copied to clipboard."))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the rendered day to the clipboard")

	return cmd
}
