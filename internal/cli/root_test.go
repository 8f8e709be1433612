package cli

import (
	"testing"
	"time"

	"github.com/fokus-app/fokus/internal/core"
	"github.com/fokus-app/fokus/pkg/models"
)

// setupServices wires the package-level service vars to an in-memory stack
// and restores the originals when the test finishes.
func setupServices(t *testing.T) {
	t.Helper()

	origPolicy := Policy
	origStore := Store
	origRepo := Repo
	origSessions := Sessions
	origReporter := Reporter
	origPublisher := Publisher
	t.Cleanup(func() {
		Policy = origPolicy
		Store = origStore
		Repo = origRepo
		Sessions = origSessions
		Reporter = origReporter
		Publisher = origPublisher
	})

	clock := &fixedClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)}
	Policy = core.DefaultConfig().Policy()
	Store = core.NewStore(models.DefaultSnapshot(), nil)
	engine := core.NewEngine(Store, clock, Policy)
	Repo = core.NewRepository(Store, clock, Policy, nil)
	Sessions = core.NewSessionController(Store, engine, clock, Policy, nil, nil)
	Reporter = core.NewReporter(Store, engine, clock)
	Publisher = nil
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func TestCommandRegistration(t *testing.T) {
	want := []string{
		"add", "sub", "list", "today", "backlog", "delete",
		"focus", "done", "stop", "stats", "report", "progress",
		"share", "mcp", "version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("expected %q command to be registered", name)
		}
	}
}

func TestVersionInfo(t *testing.T) {
	origVersion := appVersion
	origCommit := appCommit
	origDate := appDate
	defer func() {
		appVersion, appCommit, appDate = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-03-14")
	if appVersion != "1.2.3" || appCommit != "abc1234" || appDate != "2026-03-14" {
		t.Errorf("version info not applied: %s %s %s", appVersion, appCommit, appDate)
	}
}
