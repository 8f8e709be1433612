package models

import "time"

// TaskStatus represents the current lifecycle state of a task.
type TaskStatus string

const (
	StatusBacklog TaskStatus = "backlog"
	StatusToday   TaskStatus = "today"
	StatusDone    TaskStatus = "done"
)

// MaxTodayTasks is the hard cap on tasks that may hold StatusToday at once.
// Main-idea containers never count against it because they can never leave
// the backlog.
const MaxTodayTasks = 3

// Task represents a single unit of work captured in the idea inbox.
//
// A task with IsMainIdea set is a container: it holds sub-ideas (tasks whose
// ParentID points at it), stays in the backlog forever, and is never focused
// or completed directly. Everything else is a workable unit.
type Task struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Status    TaskStatus `yaml:"status"`
	CreatedAt time.Time  `yaml:"created_at"`

	// CompletedAt is set exactly once, when the task transitions to done.
	CompletedAt time.Time `yaml:"completed_at,omitempty"`

	// Notes is the append-only checkpoint log. Each entry records a reason
	// for leaving a focus session early, stamped with the wall-clock time.
	// Entries are never edited, reordered, or removed.
	Notes []string `yaml:"notes,omitempty"`

	// ParentID links a sub-idea to its main-idea container. The hierarchy
	// is two levels deep at most: a sub-idea can never be a parent.
	ParentID   string `yaml:"parent_id,omitempty"`
	IsMainIdea bool   `yaml:"is_main_idea,omitempty"`

	// EstimatedMinutes is the planned duration. ActualMinutes is copied
	// from the estimate (or the configured default) at completion; it is
	// not a measured duration.
	EstimatedMinutes int `yaml:"estimated_minutes,omitempty"`
	ActualMinutes    int `yaml:"actual_minutes,omitempty"`

	// Deadline is reserved for future scheduling features.
	Deadline time.Time `yaml:"deadline,omitempty"`
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// HasFailedFocus reports whether the task was ever entered into a focus
// session and abandoned early, i.e. it carries at least one checkpoint note.
func (t *Task) HasFailedFocus() bool {
	return len(t.Notes) > 0
}
