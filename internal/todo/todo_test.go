package todo

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	td, err := New("buy groceries")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if td.ID == "" {
		t.Error("New() did not assign an ID")
	}
	if td.Title != "buy groceries" {
		t.Errorf("Title = %q, want %q", td.Title, "buy groceries")
	}
	if td.Completed {
		t.Error("new todo should not be completed")
	}
	if td.CreatedAt.IsZero() {
		t.Error("New() did not set CreatedAt")
	}
}

func TestNewEmptyTitle(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("New(\"\") error = %v, want %v", err, ErrEmptyTitle)
	}
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a, err := New("first")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("second")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Errorf("two todos got the same ID %q", a.ID)
	}
}
