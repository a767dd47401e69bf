package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/task"
)

func (a *App) doneCmd() *cobra.Command {
	var (
		undo    bool
		subtask string
	)

	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed (or not, with --undo).

Completion belongs to the whole task: every day-segment of a
multi-day task reflects it. The id may be a unique prefix.

With --subtask, toggles one checklist item instead of the task.
The subtask may be named by id prefix or by title prefix.`,
		Example: `  dayline done 3f2a
  dayline done 3f2a --undo
  dayline done 3f2a --subtask "read docs"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := a.resolveTask(ctx, args[0])
			if err != nil {
				return err
			}

			if subtask != "" {
				return a.toggleSubtask(ctx, t.ID, subtask)
			}

			if err := a.tasks.SetCompleted(ctx, t.ID, !undo); err != nil {
				return fmt.Errorf("updating task: %w", err)
			}

			if undo {
				fmt.Printf("Reopened %s: %s\n", shortID(t.ID), t.Title)
			} else {
				fmt.Printf("Completed %s: %s\n", shortID(t.ID), t.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task as not completed")
	cmd.Flags().StringVar(&subtask, "subtask", "", "Toggle one checklist item (id or title prefix)")

	return cmd
}

// toggleSubtask flips one checklist item and persists the whole tree.
func (a *App) toggleSubtask(ctx context.Context, id, prefix string) error {
	t, err := a.tasks.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("loading task: %w", err)
	}

	s, err := resolveSubtask(t.Subtasks, prefix)
	if err != nil {
		return err
	}
	task.ToggleSubtask(t.Subtasks, s.ID)

	if err := a.tasks.UpdateTask(ctx, t); err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	state := "done"
	if !s.Completed {
		state = "open"
	}
	total, done := task.CountSubtasks(t.Subtasks)
	fmt.Printf("Subtask %s: %s (%d/%d done)\n", state, s.Title, done, total)
	return nil
}
