package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/fokus-app/fokus/pkg/models"
)

// Repository owns the task collection: creation, deletion, promotion between
// the inbox and the today set, and the two-level main-idea hierarchy.
type Repository struct {
	store  *Store
	clock  Clock
	policy Policy
	events EventLogger
}

// NewRepository creates a Repository over the given store. events may be nil.
func NewRepository(store *Store, clock Clock, policy Policy, events EventLogger) *Repository {
	return &Repository{store: store, clock: clock, policy: policy, events: events}
}

// AddTaskOpts carries the optional attributes of a new task.
type AddTaskOpts struct {
	MainIdea         bool
	ParentID         string
	EstimatedMinutes int
}

// AddTask captures a new task into the backlog. The task is inserted at the
// head of the collection; consumers rely on newest-first inbox ordering.
func (r *Repository) AddTask(title string, opts AddTaskOpts) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("task title must not be empty")
	}
	if opts.MainIdea && opts.ParentID != "" {
		return nil, NewValidationError("a sub-idea cannot be a main idea")
	}
	if opts.ParentID != "" {
		if err := r.checkParent(opts.ParentID); err != nil {
			return nil, err
		}
	}

	t := &models.Task{
		ID:               r.store.nextID(r.policy.TaskIDPrefix, r.policy.TaskIDPadWidth),
		Title:            title,
		Status:           models.StatusBacklog,
		CreatedAt:        r.clock.Now(),
		IsMainIdea:       opts.MainIdea,
		ParentID:         opts.ParentID,
		EstimatedMinutes: opts.EstimatedMinutes,
	}

	r.store.snap.Tasks = append([]*models.Task{t}, r.store.snap.Tasks...)
	if t.ParentID != "" {
		r.store.children[t.ParentID] = append([]string{t.ID}, r.store.children[t.ParentID]...)
	}

	if err := r.store.commit(); err != nil {
		return nil, fmt.Errorf("adding task: %w", err)
	}
	r.logEvent("task.created", map[string]any{
		"task_id":   t.ID,
		"main_idea": t.IsMainIdea,
		"parent_id": t.ParentID,
	})
	return t, nil
}

// AddSubIdea captures a workable sub-idea under a main-idea container.
// estimatedMinutes defaults to the configured estimate when non-positive.
func (r *Repository) AddSubIdea(parentID, title string, estimatedMinutes int) (*models.Task, error) {
	if estimatedMinutes <= 0 {
		estimatedMinutes = r.policy.DefaultEstimateMinutes
	}
	return r.AddTask(title, AddTaskOpts{
		ParentID:         parentID,
		EstimatedMinutes: estimatedMinutes,
	})
}

// checkParent enforces referential integrity on insert: the parent must
// exist and must be a main-idea container.
func (r *Repository) checkParent(parentID string) error {
	parent := r.store.find(parentID)
	if parent == nil {
		return NewValidationError("parent %s not found", parentID)
	}
	if !parent.IsMainIdea {
		return NewValidationError("parent %s is not a main idea", parentID)
	}
	return nil
}

// DeleteTask removes a task. Deleting a main idea does not cascade: its
// sub-ideas survive with their parent reference cleared.
func (r *Repository) DeleteTask(id string) error {
	t := r.store.find(id)
	if t == nil {
		return NewValidationError("task %s not found", id)
	}

	tasks := r.store.snap.Tasks
	for i, candidate := range tasks {
		if candidate.ID == id {
			r.store.snap.Tasks = append(tasks[:i], tasks[i+1:]...)
			break
		}
	}

	if t.IsMainIdea {
		for _, childID := range r.store.children[id] {
			if child := r.store.find(childID); child != nil {
				child.ParentID = ""
			}
		}
		delete(r.store.children, id)
	}
	if t.ParentID != "" {
		r.store.children[t.ParentID] = removeID(r.store.children[t.ParentID], id)
	}

	if err := r.store.commit(); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	r.logEvent("task.deleted", map[string]any{"task_id": id})
	return nil
}

// MoveToToday promotes a task into the today focus set. Guards are checked
// in order: main-idea containers cannot be relocated, then the daily cap.
// Both rejections leave state unchanged and carry a modal alert.
func (r *Repository) MoveToToday(id string) error {
	t := r.store.find(id)
	if t == nil {
		return NewValidationError("task %s not found", id)
	}
	if t.IsMainIdea {
		return &PolicyError{
			Code: RejectMainIdeaMove,
			Alert: Alert{
				Title:   "✋ STOP!",
				Content: "Ide utama tidak bisa dipindah langsung. Pilih sub-idenya.",
			},
		}
	}
	if r.store.todayCount() >= r.policy.TodayCap {
		return &PolicyError{
			Code: RejectDailyCap,
			Alert: Alert{
				Title:   "✋ STOP!",
				Content: fmt.Sprintf("Maksimal %d Prioritas hari ini.", r.policy.TodayCap),
			},
		}
	}

	t.Status = models.StatusToday
	if err := r.store.commit(); err != nil {
		return fmt.Errorf("moving task %s to today: %w", id, err)
	}
	r.logEvent("task.moved", map[string]any{"task_id": id, "status": string(models.StatusToday)})
	return nil
}

// MoveToBacklog demotes a task back to the inbox, unconditionally.
func (r *Repository) MoveToBacklog(id string) error {
	t := r.store.find(id)
	if t == nil {
		return NewValidationError("task %s not found", id)
	}

	t.Status = models.StatusBacklog
	if err := r.store.commit(); err != nil {
		return fmt.Errorf("moving task %s to backlog: %w", id, err)
	}
	r.logEvent("task.moved", map[string]any{"task_id": id, "status": string(models.StatusBacklog)})
	return nil
}

// GetSubIdeas returns the not-yet-done children of a main idea, preserving
// storage order.
func (r *Repository) GetSubIdeas(parentID string) []*models.Task {
	var out []*models.Task
	for _, t := range r.store.snap.Tasks {
		if t.ParentID == parentID && t.Status != models.StatusDone {
			out = append(out, t)
		}
	}
	return out
}

// Progress is the completion rollup for a main idea's children.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// GetProgress reports how many of a main idea's children are done. A
// childless parent reports zero across the board.
func (r *Repository) GetProgress(parentID string) Progress {
	var p Progress
	for _, childID := range r.store.children[parentID] {
		child := r.store.find(childID)
		if child == nil {
			continue
		}
		p.Total++
		if child.IsDone() {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

func (r *Repository) logEvent(eventType string, data map[string]any) {
	if r.events != nil {
		_ = r.events.LogEvent(eventType, data)
	}
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
