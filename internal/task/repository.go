package task

import (
	"context"
	"time"
)

// Repository defines the storage interface for tasks.
type Repository interface {
	// CreateTask adds a new task to the repository.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by id. Returns ErrTaskNotFound if no
	// task has that id.
	GetTask(ctx context.Context, id string) (*Task, error)

	// UpdateTask persists the task's current field values in place.
	UpdateTask(ctx context.Context, task *Task) error

	// SetCompleted marks a task complete or incomplete. Completion is
	// a property of the whole task, never of an individual day.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// RescheduleTask moves a task to new times, and optionally a new
	// start day, keeping everything else untouched.
	RescheduleTask(ctx context.Context, id string, date time.Time, start, end string) error

	// DeleteTask removes a task by id.
	DeleteTask(ctx context.Context, id string) error

	// ListTasksByDateRange returns all tasks visible within the date
	// range (inclusive), including multi-day tasks that merely pass
	// through it, ordered by start day then start time.
	ListTasksByDateRange(ctx context.Context, start, end time.Time) ([]*Task, error)

	// Close releases any resources held by the repository.
	Close() error
}
