package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmoratilla/dayline/internal/todo"
)

func (a *App) todoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the unscheduled todo list",
		Long: `Manage the checklist of items that have no time slot yet.

Running "dayline todo" lists everything.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printTodos(context.Background())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [title]",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := todo.New(args[0])
			if err != nil {
				return err
			}
			if err := a.todos.CreateTodo(context.Background(), t); err != nil {
				return fmt.Errorf("creating todo: %w", err)
			}
			fmt.Printf("Added %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "done [id]",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := a.resolveTodo(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.todos.SetTodoCompleted(ctx, t.ID, true); err != nil {
				return fmt.Errorf("completing todo: %w", err)
			}
			fmt.Printf("Completed %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := a.resolveTodo(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.todos.DeleteTodo(ctx, t.ID); err != nil {
				return fmt.Errorf("deleting todo: %w", err)
			}
			fmt.Printf("Deleted %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	})

	return cmd
}

func (a *App) printTodos(ctx context.Context) error {
	todos, err := a.todos.ListTodos(ctx)
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}
	if len(todos) == 0 {
		fmt.Println("No todos.")
		return nil
	}
	for _, t := range todos {
		line := fmt.Sprintf("%s %s %s", checkbox(t.Completed), shortID(t.ID), t.Title)
		if t.Completed {
			line = formatDone(line)
		}
		fmt.Println(line)
	}
	return nil
}

// resolveTodo finds a todo by full id or unique prefix.
func (a *App) resolveTodo(ctx context.Context, prefix string) (*todo.Todo, error) {
	todos, err := a.todos.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	var match *todo.Todo
	for _, t := range todos {
		if !strings.HasPrefix(t.ID, prefix) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id prefix %q is ambiguous", prefix)
		}
		match = t
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", todo.ErrTodoNotFound, prefix)
	}
	return match, nil
}
