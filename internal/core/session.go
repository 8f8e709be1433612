package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fokus-app/fokus/pkg/models"
)

// Fullscreen is the external collaborator toggled on session boundaries.
// Calls are fire-and-forget: a failing toggle never blocks a transition.
type Fullscreen interface {
	SetFullscreen(enabled bool) error
}

// SessionController is the Idle ↔ Focusing state machine. Exactly one task
// can be under focus at a time; the session survives process restarts
// because the markers live in the snapshot.
type SessionController struct {
	store  *Store
	engine *Engine
	clock  Clock
	policy Policy
	screen Fullscreen
	events EventLogger
}

// NewSessionController creates a SessionController. screen and events may
// be nil.
func NewSessionController(store *Store, engine *Engine, clock Clock, policy Policy, screen Fullscreen, events EventLogger) *SessionController {
	return &SessionController{
		store:  store,
		engine: engine,
		clock:  clock,
		policy: policy,
		screen: screen,
		events: events,
	}
}

// StartFocus enters a focus session on the given task. The only behavioral
// gate is the lockout; the daily cap applies at promotion time, not here.
func (c *SessionController) StartFocus(id string) error {
	t := c.store.find(id)
	if t == nil {
		return NewValidationError("task %s not found", id)
	}
	if t.IsMainIdea {
		return &PolicyError{
			Code: RejectMainIdeaFocus,
			Alert: Alert{
				Title:   "✋ STOP!",
				Content: "Ide utama bukan unit kerja. Fokus pada salah satu sub-idenya.",
			},
		}
	}

	a := c.store.Accountability()
	now := c.clock.Now()
	if a.LockedOut(now) {
		return &PolicyError{
			Code: RejectLockoutActive,
			Alert: Alert{
				Title: "🔒 MODE TERKUNCI",
				Content: fmt.Sprintf("Terlalu sering gagal fokus. Coba lagi setelah %s.",
					a.LockoutUntil.Local().Format("15:04")),
			},
		}
	}

	c.store.snap.IsFocusMode = true
	c.store.snap.ActiveTaskID = id
	c.setFullscreen(true)

	if err := c.store.commit(); err != nil {
		return fmt.Errorf("starting focus on %s: %w", id, err)
	}
	c.logEvent("session.started", map[string]any{"task_id": id})
	return nil
}

// CompleteTask finishes the live session: the task is done, the actual
// duration is stamped from the estimate, the reward and streak update are
// applied, and the controller returns to idle.
func (c *SessionController) CompleteTask(id string) error {
	if !c.store.snap.IsFocusMode || c.store.snap.ActiveTaskID != id {
		return NewValidationError("no active focus session for task %s", id)
	}
	t := c.store.find(id)
	if t == nil {
		return NewValidationError("task %s not found", id)
	}

	now := c.clock.Now()
	t.Status = models.StatusDone
	t.CompletedAt = now

	est := t.EstimatedMinutes
	if est <= 0 {
		est = c.policy.DefaultEstimateMinutes
	}
	t.ActualMinutes = est

	c.engine.RecordCompletion(now)

	c.store.snap.IsFocusMode = false
	c.store.snap.ActiveTaskID = ""
	c.setFullscreen(false)

	if err := c.store.commit(); err != nil {
		return fmt.Errorf("completing task %s: %w", id, err)
	}
	c.logEvent("session.completed", map[string]any{"task_id": id, "actual_minutes": t.ActualMinutes})
	return nil
}

// StopEarly abandons the live session. It appends exactly one timestamped
// checkpoint note to the active task, applies the failure penalty, returns
// the controller to idle, and hands back the checkpoint alert for display.
//
// The lockout decision is deliberately NOT taken here: the caller must
// invoke EvaluateConsequence as a separate follow-up step, after the
// checkpoint confirmation has been rendered.
func (c *SessionController) StopEarly(reason string) (Alert, error) {
	trimmed := strings.TrimSpace(reason)
	if utf8.RuneCountInString(trimmed) < c.policy.MinStopReasonLength {
		return Alert{}, NewValidationError("stop reason must be at least %d characters", c.policy.MinStopReasonLength)
	}

	active := c.store.ActiveTask()
	if active == nil {
		return Alert{}, NewValidationError("no active focus session")
	}

	now := c.clock.Now()
	note := fmt.Sprintf("%s (%s)", trimmed, now.Local().Format("15:04"))
	active.Notes = append(active.Notes, note)

	var list strings.Builder
	for i, n := range active.Notes {
		if i > 0 {
			list.WriteByte('\n')
		}
		fmt.Fprintf(&list, "%d. %s", i+1, n)
	}
	checkpoint := Alert{Title: "📝 Progress tercatat", Content: list.String()}

	c.engine.RecordFailure(now)

	c.store.snap.IsFocusMode = false
	c.store.snap.ActiveTaskID = ""
	c.setFullscreen(false)

	if err := c.store.commit(); err != nil {
		return Alert{}, fmt.Errorf("stopping focus early: %w", err)
	}
	c.logEvent("session.stopped_early", map[string]any{
		"task_id":  active.ID,
		"attempts": c.store.Accountability().FailedAttempts,
	})
	return checkpoint, nil
}

// EvaluateConsequence is the second step of the stop-early protocol: it
// asks the engine whether the failure count has earned a warning or a
// lockout and commits any resulting state change. The returned bool reports
// a lockout.
func (c *SessionController) EvaluateConsequence() (*Alert, bool, error) {
	alert, lockedOut := c.engine.ApplyConsequence()
	if alert == nil {
		return nil, false, nil
	}
	if lockedOut {
		if err := c.store.commit(); err != nil {
			return alert, true, fmt.Errorf("recording lockout: %w", err)
		}
		c.logEvent("accountability.lockout", map[string]any{
			"until": c.store.Accountability().LockoutUntil,
		})
	}
	return alert, lockedOut, nil
}

func (c *SessionController) setFullscreen(enabled bool) {
	if c.screen != nil {
		_ = c.screen.SetFullscreen(enabled)
	}
}

func (c *SessionController) logEvent(eventType string, data map[string]any) {
	if c.events != nil {
		_ = c.events.LogEvent(eventType, data)
	}
}
