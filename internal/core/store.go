// Package core contains the state engine for fokus: the task repository,
// the focus-session controller, the accountability engine, and the report
// projection. All mutation funnels through these components; they share one
// explicitly constructed Store rather than hidden global state.
package core

import (
	"fmt"

	"github.com/fokus-app/fokus/pkg/models"
)

// Persister writes the snapshot out after a committed mutation. It may be
// nil, in which case state lives only in memory (tests).
type Persister interface {
	Save(snap *models.Snapshot) error
}

// Store owns the application state as a single consistency unit: every
// operation mutates the snapshot synchronously and commits it whole. The
// parent→children index is maintained transactionally alongside the flat
// task list and rebuilt from it on load.
type Store struct {
	snap     *models.Snapshot
	children map[string][]string
	persist  Persister
}

// NewStore wraps a snapshot (typically restored from disk, or
// models.DefaultSnapshot on first run) and rebuilds the hierarchy index.
func NewStore(snap *models.Snapshot, persist Persister) *Store {
	s := &Store{snap: snap, persist: persist}
	s.rebuildIndex()
	return s
}

func (s *Store) rebuildIndex() {
	s.children = make(map[string][]string)
	for _, t := range s.snap.Tasks {
		if t.ParentID != "" {
			s.children[t.ParentID] = append(s.children[t.ParentID], t.ID)
		}
	}
}

// commit persists the snapshot after a state transition.
func (s *Store) commit() error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(s.snap); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}

// find returns the task with the given id, or nil.
func (s *Store) find(id string) *models.Task {
	for _, t := range s.snap.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (*models.Task, error) {
	if t := s.find(id); t != nil {
		return t, nil
	}
	return nil, NewValidationError("task %s not found", id)
}

// Tasks returns all tasks in storage order (newest first).
func (s *Store) Tasks() []*models.Task {
	out := make([]*models.Task, len(s.snap.Tasks))
	copy(out, s.snap.Tasks)
	return out
}

// TasksByStatus returns all tasks with the given status, storage order.
func (s *Store) TasksByStatus(status models.TaskStatus) []*models.Task {
	var out []*models.Task
	for _, t := range s.snap.Tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Accountability returns the mutable accountability record.
func (s *Store) Accountability() *models.Accountability {
	return &s.snap.Accountability
}

// FocusMode reports whether a focus session is live, and on which task.
func (s *Store) FocusMode() (bool, string) {
	return s.snap.IsFocusMode, s.snap.ActiveTaskID
}

// ActiveTask returns the task under live focus, or nil when idle.
func (s *Store) ActiveTask() *models.Task {
	if !s.snap.IsFocusMode || s.snap.ActiveTaskID == "" {
		return nil
	}
	return s.find(s.snap.ActiveTaskID)
}

// todayCount counts workable tasks currently promoted to today. Main-idea
// containers are excluded; they can never hold the status anyway.
func (s *Store) todayCount() int {
	n := 0
	for _, t := range s.snap.Tasks {
		if t.Status == models.StatusToday && !t.IsMainIdea {
			n++
		}
	}
	return n
}

// nextID advances the task counter and formats a fresh identifier.
func (s *Store) nextID(prefix string, padWidth int) string {
	s.snap.TaskCounter++
	if padWidth > 0 {
		return fmt.Sprintf("%s-%0*d", prefix, padWidth, s.snap.TaskCounter)
	}
	return fmt.Sprintf("%s-%d", prefix, s.snap.TaskCounter)
}
