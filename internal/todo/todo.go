// Package todo holds the unscheduled checklist items that live next to
// the timeline.
package todo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation and domain errors.
var (
	ErrEmptyTitle   = errors.New("todo title cannot be empty")
	ErrTodoNotFound = errors.New("todo not found")
)

// Todo is a checklist item with no time slot of its own.
type Todo struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}

// New creates a new Todo with validation.
func New(title string) (*Todo, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Todo{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now(),
	}, nil
}

// Store defines the storage interface for todos.
type Store interface {
	// CreateTodo adds a new todo.
	CreateTodo(ctx context.Context, t *Todo) error

	// SetTodoCompleted marks a todo complete or incomplete.
	// Returns ErrTodoNotFound if no todo has that id.
	SetTodoCompleted(ctx context.Context, id string, completed bool) error

	// DeleteTodo removes a todo by id.
	DeleteTodo(ctx context.Context, id string) error

	// ListTodos returns all todos ordered by creation time.
	ListTodos(ctx context.Context) ([]*Todo, error)
}
