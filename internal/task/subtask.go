package task

import "github.com/google/uuid"

// SubTask is a node in a task's checklist tree. Children may nest to
// arbitrary depth.
type SubTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Children  []SubTask `json:"children,omitempty"`
}

// NewSubTask creates a leaf subtask.
func NewSubTask(title string) SubTask {
	return SubTask{ID: uuid.NewString(), Title: title}
}

// WalkSubtasks visits every node in the tree depth-first, parents
// before children. The walk stops early if fn returns false.
func WalkSubtasks(subs []SubTask, fn func(*SubTask) bool) bool {
	for i := range subs {
		if !fn(&subs[i]) {
			return false
		}
		if !WalkSubtasks(subs[i].Children, fn) {
			return false
		}
	}
	return true
}

// CountSubtasks returns the total and completed node counts for a tree.
func CountSubtasks(subs []SubTask) (total, completed int) {
	WalkSubtasks(subs, func(s *SubTask) bool {
		total++
		if s.Completed {
			completed++
		}
		return true
	})
	return total, completed
}

// ToggleSubtask flips the completed state of the subtask with the
// given id anywhere in the tree. Returns false if no node matches.
func ToggleSubtask(subs []SubTask, id string) bool {
	found := false
	WalkSubtasks(subs, func(s *SubTask) bool {
		if s.ID == id {
			s.Completed = !s.Completed
			found = true
			return false
		}
		return true
	})
	return found
}
