package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Task titles: bold
	colorTitle = color.New(color.Bold)

	// Done tasks: dim/grey
	colorDone = color.New(color.FgWhite, color.Faint)

	// Multi-day continuation markers: cyan
	colorSpan = color.New(color.FgCyan)

	// Insight/suggestion output: yellow to make it pop
	colorInsight = color.New(color.FgYellow)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// formatTitle formats a task title.
func formatTitle(s string) string {
	return colorTitle.Sprint(s)
}

// formatDone formats text for a completed task.
func formatDone(s string) string {
	return colorDone.Sprint(s)
}

// formatSpan formats a multi-day marker.
func formatSpan(s string) string {
	return colorSpan.Sprint(s)
}

// formatInsight formats text for insight/coaching output.
func formatInsight(s string) string {
	return colorInsight.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
