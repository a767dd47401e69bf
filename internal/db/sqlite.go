// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/energy"
	"github.com/lmoratilla/dayline/internal/task"
	"github.com/lmoratilla/dayline/internal/todo"
)

// SQLite implements task.Repository, energy.Store and todo.Store.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateTask adds a new task to the repository.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	subtasks, err := json.Marshal(t.Subtasks)
	if err != nil {
		return fmt.Errorf("encoding subtasks: %w", err)
	}

	query := `
		INSERT INTO tasks (
			id, title, description, date, end_date, start_time, end_time,
			completed, progress, color, emoji, subtasks, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		dateutil.FormatDate(t.Date),
		nullableDate(t.EndDate),
		t.StartTime,
		t.EndTime,
		t.Completed,
		t.Progress,
		t.Color,
		t.Emoji,
		string(subtasks),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	return nil
}

const taskColumns = `id, title, description, date, end_date, start_time, end_time,
		       completed, progress, color, emoji, subtasks, created_at`

// GetTask retrieves a task by id.
func (s *SQLite) GetTask(ctx context.Context, id string) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, task.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// UpdateTask persists the task's current field values in place.
func (s *SQLite) UpdateTask(ctx context.Context, t *task.Task) error {
	subtasks, err := json.Marshal(t.Subtasks)
	if err != nil {
		return fmt.Errorf("encoding subtasks: %w", err)
	}

	query := `
		UPDATE tasks
		SET title = ?, description = ?, date = ?, end_date = ?,
		    start_time = ?, end_time = ?, completed = ?, progress = ?,
		    color = ?, emoji = ?, subtasks = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		dateutil.FormatDate(t.Date),
		nullableDate(t.EndDate),
		t.StartTime,
		t.EndTime,
		t.Completed,
		t.Progress,
		t.Color,
		t.Emoji,
		string(subtasks),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(result)
}

// SetCompleted marks a task complete or incomplete.
func (s *SQLite) SetCompleted(ctx context.Context, id string, completed bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return fmt.Errorf("setting completed: %w", err)
	}
	return requireRow(result)
}

// RescheduleTask moves a task to new times and start day.
func (s *SQLite) RescheduleTask(ctx context.Context, id string, date time.Time, start, end string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET date = ?, start_time = ?, end_time = ? WHERE id = ?`,
		dateutil.FormatDate(date), start, end, id)
	if err != nil {
		return fmt.Errorf("rescheduling task: %w", err)
	}
	return requireRow(result)
}

// DeleteTask removes a task by id.
func (s *SQLite) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(result)
}

// ListTasksByDateRange returns all tasks visible within the date range
// (inclusive). A task is visible when its own day span, including the
// extra day a wrapping time-of-day adds, intersects the range.
func (s *SQLite) ListTasksByDateRange(ctx context.Context, start, end time.Time) ([]*task.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE date <= ?
		  AND COALESCE(end_date, CASE WHEN start_time > end_time
		        THEN date(date, '+1 day') ELSE date END) >= ?
		ORDER BY date, start_time, created_at
	`

	rows, err := s.db.QueryContext(ctx, query,
		dateutil.FormatDate(end), dateutil.FormatDate(start))
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// RecordEnergy upserts the reading for its (date, hour) pair.
func (s *SQLite) RecordEnergy(ctx context.Context, l energy.Level) error {
	query := `
		INSERT INTO energy_levels (date, hour, value) VALUES (?, ?, ?)
		ON CONFLICT(date, hour) DO UPDATE SET value = excluded.value
	`
	_, err := s.db.ExecContext(ctx, query, dateutil.FormatDate(l.Date), l.Hour, l.Value)
	if err != nil {
		return fmt.Errorf("recording energy: %w", err)
	}
	return nil
}

// ListEnergyByDateRange returns readings within the range (inclusive).
func (s *SQLite) ListEnergyByDateRange(ctx context.Context, start, end time.Time) ([]energy.Level, error) {
	query := `
		SELECT date, hour, value FROM energy_levels
		WHERE date >= ? AND date <= ?
		ORDER BY date, hour
	`

	rows, err := s.db.QueryContext(ctx, query,
		dateutil.FormatDate(start), dateutil.FormatDate(end))
	if err != nil {
		return nil, fmt.Errorf("querying energy levels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var levels []energy.Level
	for rows.Next() {
		var (
			l    energy.Level
			date string
		)
		if err := rows.Scan(&date, &l.Hour, &l.Value); err != nil {
			return nil, fmt.Errorf("scanning energy level: %w", err)
		}
		if l.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("parsing energy date: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating energy levels: %w", err)
	}

	return levels, nil
}

// CreateTodo adds a new todo.
func (s *SQLite) CreateTodo(ctx context.Context, t *todo.Todo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, title, completed, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Title, t.Completed, t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting todo: %w", err)
	}
	return nil
}

// SetTodoCompleted marks a todo complete or incomplete.
func (s *SQLite) SetTodoCompleted(ctx context.Context, id string, completed bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return fmt.Errorf("setting todo completed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

// DeleteTodo removes a todo by id.
func (s *SQLite) DeleteTodo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

// ListTodos returns all todos ordered by creation time.
func (s *SQLite) ListTodos(ctx context.Context) ([]*todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, completed, created_at FROM todos ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var todos []*todo.Todo
	for rows.Next() {
		var (
			t         todo.Todo
			createdAt string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing todo created at: %w", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	return todos, nil
}

// scanner abstracts sql.Row and sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, decoding the subtask JSON tree.
func scanTask(row scanner) (*task.Task, error) {
	var (
		t         task.Task
		date      string
		endDate   sql.NullString
		subtasks  string
		createdAt string
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&date,
		&endDate,
		&t.StartTime,
		&t.EndTime,
		&t.Completed,
		&t.Progress,
		&t.Color,
		&t.Emoji,
		&subtasks,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t.Date, err = parseDate(date); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if endDate.Valid && endDate.String != "" {
		if t.EndDate, err = parseDate(endDate.String); err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if err := json.Unmarshal([]byte(subtasks), &t.Subtasks); err != nil {
		return nil, fmt.Errorf("decoding subtasks: %w", err)
	}

	return &t, nil
}

// parseDate parses a stored YYYY-MM-DD value.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateutil.DateLayout, s)
}

// nullableDate renders a zero time as NULL.
func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return dateutil.FormatDate(t)
}

// requireRow converts a zero-row update into ErrTaskNotFound.
func requireRow(result sql.Result) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
