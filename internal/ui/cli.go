// Package ui implements the dayline command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/config"
	"github.com/lmoratilla/dayline/internal/energy"
	"github.com/lmoratilla/dayline/internal/task"
	"github.com/lmoratilla/dayline/internal/todo"
	"github.com/lmoratilla/dayline/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	tasks  task.Repository
	energy energy.Store
	todos  todo.Store
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given stores and config.
func NewApp(tasks task.Repository, energyStore energy.Store, todos todo.Store, cfg *config.Config) *App {
	a := &App{tasks: tasks, energy: energyStore, todos: todos, config: cfg}

	a.root = &cobra.Command{
		Use:   "dayline",
		Short: "A terminal daily planner",
		Long: `Dayline is a single-user daily planner: a timeline of tasks on a
24-hour axis with energy tracking, multi-day tasks and overlap-aware
layout. Run it without arguments to open the interactive timeline.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.tasks, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.energyCmd())
	a.root.AddCommand(a.todoCmd())
	a.root.AddCommand(a.statsCmd())
	a.root.AddCommand(a.suggestCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("dayline %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
