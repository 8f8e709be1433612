package core

import (
	"testing"
	"time"

	"github.com/fokus-app/fokus/pkg/models"
)

// fakeClock pins the calendar for deterministic streak and lockout tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) nextDay() { c.now = c.now.AddDate(0, 0, 1) }

// memPersister records commits in memory.
type memPersister struct {
	saves    int
	failWith error
}

func (p *memPersister) Save(_ *models.Snapshot) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.saves++
	return nil
}

// spyScreen records fullscreen toggles.
type spyScreen struct {
	calls []bool
}

func (s *spyScreen) SetFullscreen(enabled bool) error {
	s.calls = append(s.calls, enabled)
	return nil
}

type testEnv struct {
	clock    *fakeClock
	persist  *memPersister
	screen   *spyScreen
	store    *Store
	repo     *Repository
	engine   *Engine
	sessions *SessionController
	reporter *Reporter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)}
	persist := &memPersister{}
	screen := &spyScreen{}
	policy := DefaultConfig().Policy()

	store := NewStore(models.DefaultSnapshot(), persist)
	engine := NewEngine(store, clock, policy)

	return &testEnv{
		clock:    clock,
		persist:  persist,
		screen:   screen,
		store:    store,
		repo:     NewRepository(store, clock, policy, nil),
		engine:   engine,
		sessions: NewSessionController(store, engine, clock, policy, screen, nil),
		reporter: NewReporter(store, engine, clock),
	}
}

// addTask adds a plain backlog task and fails the test on error.
func (e *testEnv) addTask(t *testing.T, title string) *models.Task {
	t.Helper()
	task, err := e.repo.AddTask(title, AddTaskOpts{})
	if err != nil {
		t.Fatalf("adding task %q: %v", title, err)
	}
	return task
}

// addToday adds a task and promotes it into the today set.
func (e *testEnv) addToday(t *testing.T, title string) *models.Task {
	t.Helper()
	task := e.addTask(t, title)
	if err := e.repo.MoveToToday(task.ID); err != nil {
		t.Fatalf("moving %q to today: %v", title, err)
	}
	return task
}

// focusAndStop runs a full abandoned session with the given reason.
func (e *testEnv) focusAndStop(t *testing.T, id, reason string) Alert {
	t.Helper()
	if err := e.sessions.StartFocus(id); err != nil {
		t.Fatalf("starting focus on %s: %v", id, err)
	}
	checkpoint, err := e.sessions.StopEarly(reason)
	if err != nil {
		t.Fatalf("stopping early: %v", err)
	}
	return checkpoint
}

func mustPolicyError(t *testing.T, err error, code string) *PolicyError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a policy error, got nil")
	}
	p := AsPolicy(err)
	if p == nil {
		t.Fatalf("expected a policy error, got %v", err)
	}
	if p.Code != code {
		t.Fatalf("expected policy code %s, got %s (%s)", code, p.Code, p.Alert.Content)
	}
	return p
}

func mustValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if !IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}
