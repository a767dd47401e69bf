package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lmoratilla/dayline/internal/dateutil"
	"github.com/lmoratilla/dayline/internal/energy"
	"github.com/lmoratilla/dayline/internal/layout"
	"github.com/lmoratilla/dayline/internal/task"
	"github.com/lmoratilla/dayline/internal/todo"
)

func testStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustTask(t *testing.T, title, date, endDate, start, end string) *task.Task {
	t.Helper()
	tk, err := task.New(title, date, endDate, start, end)
	if err != nil {
		t.Fatalf("task.New(%q) returned error: %v", title, err)
	}
	return tk
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) returned error: %v", s, err)
	}
	return d
}

func TestCreateAndGetTask(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "Morning review", "2025-01-15", "2025-01-17", "09:00", "10:00")
	tk.Description = "look at the week"
	tk.Color = "#f38ba8"
	tk.Emoji = "📝"
	tk.Progress = 25
	tk.Subtasks = []task.SubTask{
		{
			ID:    "s1",
			Title: "outer",
			Children: []task.SubTask{
				{ID: "s2", Title: "inner", Completed: true},
			},
		},
	}

	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatalf("CreateTask() returned error: %v", err)
	}

	got, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatalf("GetTask() returned error: %v", err)
	}

	if got.Title != tk.Title || got.Description != tk.Description {
		t.Errorf("got title/description %q/%q, want %q/%q",
			got.Title, got.Description, tk.Title, tk.Description)
	}
	if !dateutil.SameDay(got.Date, tk.Date) {
		t.Errorf("Date = %v, want %v", got.Date, tk.Date)
	}
	if !dateutil.SameDay(got.EndDate, tk.EndDate) {
		t.Errorf("EndDate = %v, want %v", got.EndDate, tk.EndDate)
	}
	if got.StartTime != "09:00" || got.EndTime != "10:00" {
		t.Errorf("times = %s-%s, want 09:00-10:00", got.StartTime, got.EndTime)
	}
	if got.Progress != 25 || got.Color != "#f38ba8" || got.Emoji != "📝" {
		t.Errorf("payload fields lost: %+v", got)
	}
	if len(got.Subtasks) != 1 || len(got.Subtasks[0].Children) != 1 {
		t.Fatalf("subtask tree lost: %+v", got.Subtasks)
	}
	if !got.Subtasks[0].Children[0].Completed {
		t.Error("nested subtask completion lost")
	}
}

func TestGetTaskNotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.GetTask(context.Background(), "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("GetTask() error = %v, want %v", err, task.ErrTaskNotFound)
	}
}

func TestCreateTaskSameDayKeepsNullEndDate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "single", "2025-01-15", "", "09:00", "10:00")
	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatalf("CreateTask() returned error: %v", err)
	}

	got, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatalf("GetTask() returned error: %v", err)
	}
	if !got.EndDate.IsZero() {
		t.Errorf("EndDate = %v, want zero", got.EndDate)
	}
}

func TestUpdateTask(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "draft", "2025-01-15", "", "09:00", "10:00")
	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatal(err)
	}

	tk.Title = "final"
	tk.Progress = 80
	tk.Subtasks = append(tk.Subtasks, task.NewSubTask("review"))
	if err := s.UpdateTask(ctx, tk); err != nil {
		t.Fatalf("UpdateTask() returned error: %v", err)
	}

	got, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "final" || got.Progress != 80 || len(got.Subtasks) != 1 {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := testStore(t)
	tk := mustTask(t, "ghost", "2025-01-15", "", "09:00", "10:00")
	if err := s.UpdateTask(context.Background(), tk); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("UpdateTask() error = %v, want %v", err, task.ErrTaskNotFound)
	}
}

func TestSetCompleted(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "t", "2025-01-15", "", "09:00", "10:00")
	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatal(err)
	}

	if err := s.SetCompleted(ctx, tk.ID, true); err != nil {
		t.Fatalf("SetCompleted() returned error: %v", err)
	}
	got, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Completed {
		t.Error("task not marked completed")
	}

	if err := s.SetCompleted(ctx, tk.ID, false); err != nil {
		t.Fatal(err)
	}
	got, err = s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Completed {
		t.Error("task not marked incomplete again")
	}

	if err := s.SetCompleted(ctx, "missing", true); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("SetCompleted(missing) error = %v, want %v", err, task.ErrTaskNotFound)
	}
}

func TestRescheduleTask(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "t", "2025-01-15", "", "09:00", "10:00")
	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatal(err)
	}

	if err := s.RescheduleTask(ctx, tk.ID, mustDate(t, "2025-01-20"), "14:00", "15:30"); err != nil {
		t.Fatalf("RescheduleTask() returned error: %v", err)
	}

	got, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if dateutil.FormatDate(got.Date) != "2025-01-20" {
		t.Errorf("Date = %s, want 2025-01-20", dateutil.FormatDate(got.Date))
	}
	if got.StartTime != "14:00" || got.EndTime != "15:30" {
		t.Errorf("times = %s-%s, want 14:00-15:30", got.StartTime, got.EndTime)
	}

	if err := s.RescheduleTask(ctx, "missing", mustDate(t, "2025-01-20"), "14:00", "15:00"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("RescheduleTask(missing) error = %v, want %v", err, task.ErrTaskNotFound)
	}
}

func TestDeleteTask(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "t", "2025-01-15", "", "09:00", "10:00")
	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteTask(ctx, tk.ID); err != nil {
		t.Fatalf("DeleteTask() returned error: %v", err)
	}
	if _, err := s.GetTask(ctx, tk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("GetTask() after delete error = %v, want %v", err, task.ErrTaskNotFound)
	}
	if err := s.DeleteTask(ctx, tk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second DeleteTask() error = %v, want %v", err, task.ErrTaskNotFound)
	}
}

func TestListTasksByDateRange(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	single := mustTask(t, "single", "2025-01-15", "", "09:00", "10:00")
	multi := mustTask(t, "multi", "2025-01-10", "2025-01-20", "10:00", "14:00")
	wrap := mustTask(t, "wrap", "2025-01-14", "", "23:00", "01:00")
	before := mustTask(t, "before", "2025-01-01", "", "09:00", "10:00")
	after := mustTask(t, "after", "2025-02-01", "", "09:00", "10:00")

	for _, tk := range []*task.Task{single, multi, wrap, before, after} {
		if err := s.CreateTask(ctx, tk); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name       string
		start, end string
		wantTitles []string
	}{
		{
			name:  "one day sees single, spanning multi, and wrap tail",
			start: "2025-01-15", end: "2025-01-15",
			wantTitles: []string{"multi", "wrap", "single"},
		},
		{
			name:  "wrap start day",
			start: "2025-01-14", end: "2025-01-14",
			wantTitles: []string{"multi", "wrap"},
		},
		{
			name:  "multi visible on its last day",
			start: "2025-01-20", end: "2025-01-20",
			wantTitles: []string{"multi"},
		},
		{
			name:  "nothing after multi ends",
			start: "2025-01-21", end: "2025-01-25",
			wantTitles: nil,
		},
		{
			name:  "wide range ordered by date",
			start: "2025-01-01", end: "2025-02-28",
			wantTitles: []string{"before", "multi", "wrap", "single", "after"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListTasksByDateRange(ctx, mustDate(t, tt.start), mustDate(t, tt.end))
			if err != nil {
				t.Fatalf("ListTasksByDateRange() returned error: %v", err)
			}
			if len(got) != len(tt.wantTitles) {
				titles := make([]string, len(got))
				for i, tk := range got {
					titles[i] = tk.Title
				}
				t.Fatalf("got %d tasks %v, want %d", len(got), titles, len(tt.wantTitles))
			}
			for i, want := range tt.wantTitles {
				if got[i].Title != want {
					t.Errorf("task %d: title = %q, want %q", i, got[i].Title, want)
				}
			}
		})
	}
}

func TestRecordEnergyUpserts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	day := mustDate(t, "2025-01-15")

	if err := s.RecordEnergy(ctx, energy.Level{Date: day, Hour: 9, Value: 3}); err != nil {
		t.Fatalf("RecordEnergy() returned error: %v", err)
	}
	if err := s.RecordEnergy(ctx, energy.Level{Date: day, Hour: 9, Value: 5}); err != nil {
		t.Fatalf("second RecordEnergy() returned error: %v", err)
	}
	if err := s.RecordEnergy(ctx, energy.Level{Date: day, Hour: 14, Value: 2}); err != nil {
		t.Fatal(err)
	}

	levels, err := s.ListEnergyByDateRange(ctx, day, day)
	if err != nil {
		t.Fatalf("ListEnergyByDateRange() returned error: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d readings, want 2", len(levels))
	}
	if levels[0].Hour != 9 || levels[0].Value != 5 {
		t.Errorf("reading 0 = %+v, want hour 9 value 5 after upsert", levels[0])
	}
	if levels[1].Hour != 14 || levels[1].Value != 2 {
		t.Errorf("reading 1 = %+v, want hour 14 value 2", levels[1])
	}
}

func TestListEnergyByDateRangeFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, d := range []string{"2025-01-10", "2025-01-15", "2025-01-20"} {
		if err := s.RecordEnergy(ctx, energy.Level{Date: mustDate(t, d), Hour: 9, Value: 3}); err != nil {
			t.Fatal(err)
		}
	}

	levels, err := s.ListEnergyByDateRange(ctx, mustDate(t, "2025-01-12"), mustDate(t, "2025-01-18"))
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 1 {
		t.Fatalf("got %d readings, want 1", len(levels))
	}
	if dateutil.FormatDate(levels[0].Date) != "2025-01-15" {
		t.Errorf("reading date = %s, want 2025-01-15", dateutil.FormatDate(levels[0].Date))
	}
}

func TestTodoLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := todo.New("first")
	if err != nil {
		t.Fatal(err)
	}
	second, err := todo.New("second")
	if err != nil {
		t.Fatal(err)
	}
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	if err := s.CreateTodo(ctx, first); err != nil {
		t.Fatalf("CreateTodo() returned error: %v", err)
	}
	if err := s.CreateTodo(ctx, second); err != nil {
		t.Fatal(err)
	}

	if err := s.SetTodoCompleted(ctx, first.ID, true); err != nil {
		t.Fatalf("SetTodoCompleted() returned error: %v", err)
	}

	todos, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos() returned error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("got %d todos, want 2", len(todos))
	}
	if todos[0].Title != "first" || !todos[0].Completed {
		t.Errorf("todo 0 = %+v, want completed %q", todos[0], "first")
	}
	if todos[1].Title != "second" || todos[1].Completed {
		t.Errorf("todo 1 = %+v, want pending %q", todos[1], "second")
	}

	if err := s.DeleteTodo(ctx, first.ID); err != nil {
		t.Fatalf("DeleteTodo() returned error: %v", err)
	}
	todos, err = s.ListTodos(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(todos) != 1 || todos[0].Title != "second" {
		t.Errorf("after delete got %v, want only %q", todos, "second")
	}

	if err := s.SetTodoCompleted(ctx, "missing", true); !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("SetTodoCompleted(missing) error = %v, want %v", err, todo.ErrTodoNotFound)
	}
	if err := s.DeleteTodo(ctx, "missing"); !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("DeleteTodo(missing) error = %v, want %v", err, todo.ErrTodoNotFound)
	}
}

// Full pipeline: persist tasks, load a day, expand to segments, and
// lay them out. Mirrors what both the CLI list command and the TUI do
// on every render.
func TestDayPipeline(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	day := mustDate(t, "2025-01-15")

	overnight := mustTask(t, "overnight build", "2025-01-14", "", "23:00", "02:00")
	meeting := mustTask(t, "planning", "2025-01-15", "", "09:00", "10:00")
	review := mustTask(t, "review", "2025-01-15", "", "09:30", "10:30")
	for _, tk := range []*task.Task{overnight, meeting, review} {
		if err := s.CreateTask(ctx, tk); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := s.ListTasksByDateRange(ctx, day, day)
	if err != nil {
		t.Fatalf("ListTasksByDateRange() returned error: %v", err)
	}

	segments := task.SegmentsForDate(tasks, day)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}
	if segments[0].Task.Title != "overnight build" || segments[0].StartTime != "00:00" || segments[0].EndTime != "02:00" {
		t.Errorf("overnight tail = %+v, want 00:00-02:00", segments[0])
	}
	if !segments[0].IsLastDay || segments[0].IsFirstDay {
		t.Errorf("overnight tail flags = first %v last %v, want last only",
			segments[0].IsFirstDay, segments[0].IsLastDay)
	}

	items := make([]layout.Item, len(segments))
	for i := range segments {
		items[i] = segments[i]
	}
	placements := layout.Compute(items)

	if placements[0].Width != 1 {
		t.Errorf("overnight tail width = %v, want full track", placements[0].Width)
	}
	if placements[1].Width != 0.5 || placements[2].Width != 0.5 {
		t.Errorf("overlapping pair widths = %v and %v, want 0.5 each",
			placements[1].Width, placements[2].Width)
	}
	if placements[1].Left == placements[2].Left {
		t.Error("overlapping pair share a lane")
	}
}

// Toggling a checklist item is a read-modify-write of the stored
// subtask tree, the same flow the done command's --subtask path runs.
func TestSubtaskToggleRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	tk := mustTask(t, "release", "2025-01-15", "", "09:00", "10:00")
	tk.Subtasks = []task.SubTask{
		task.NewSubTask("write changelog"),
		{
			ID:    "build",
			Title: "build artifacts",
			Children: []task.SubTask{
				{ID: "build-linux", Title: "linux"},
			},
		},
	}
	if err := s.CreateTask(ctx, tk); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !task.ToggleSubtask(loaded.Subtasks, "build-linux") {
		t.Fatal("ToggleSubtask() = false for nested id")
	}
	if err := s.UpdateTask(ctx, loaded); err != nil {
		t.Fatalf("UpdateTask() returned error: %v", err)
	}

	got, err := s.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Subtasks[1].Children[0].Completed {
		t.Error("nested subtask completion not persisted")
	}
	total, done := task.CountSubtasks(got.Subtasks)
	if total != 3 || done != 1 {
		t.Errorf("counts after toggle = %d/%d, want 1/3 done", done, total)
	}
}
