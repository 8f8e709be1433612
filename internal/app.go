// Package internal provides the App struct that wires all components of
// fokus together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fokus-app/fokus/internal/cli"
	"github.com/fokus-app/fokus/internal/core"
	"github.com/fokus-app/fokus/internal/integration"
	"github.com/fokus-app/fokus/internal/observability"
	"github.com/fokus-app/fokus/internal/storage"
)

// App holds all service dependencies for fokus.
type App struct {
	BasePath string
	Config   *core.Config

	// Storage layer
	SnapshotStore storage.SnapshotStore

	// Core services
	Store    *core.Store
	Repo     *core.Repository
	Engine   *core.Engine
	Sessions *core.SessionController
	Reporter *core.Reporter

	// Integration services
	Publisher integration.TextPublisher
	Screen    core.Fullscreen

	// Observability
	EventLog observability.EventLog
	Notifier observability.Notifier
}

// NewApp creates and wires all components. basePath is the directory where
// the snapshot, config, and event log live (typically ~/.fokus or the
// directory containing .fokusconfig).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	cfg, err := core.LoadConfig(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app.Config = cfg
	policy := cfg.Policy()

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".fokus_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: run without the audit trail if the log can't be created.
		app.EventLog = nil
	}
	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL != "" {
		app.Notifier = observability.NewWebhookNotifier(cfg.Notifications.WebhookURL)
	}

	// --- Storage layer ---
	app.SnapshotStore = storage.NewSnapshotStore(basePath)
	snap, err := app.SnapshotStore.Load()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	// --- Integration services ---
	app.Publisher = integration.NewClipboardPublisher()
	app.Screen = integration.NewTermScreen()

	// --- Core services ---
	clock := core.NewSystemClock()
	app.Store = core.NewStore(snap, app.SnapshotStore)

	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}

	app.Repo = core.NewRepository(app.Store, clock, policy, evtAdapter)
	app.Engine = core.NewEngine(app.Store, clock, policy)
	app.Sessions = core.NewSessionController(app.Store, app.Engine, clock, policy, app.Screen, evtAdapter)
	app.Reporter = core.NewReporter(app.Store, app.Engine, clock)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Policy = policy
	cli.Store = app.Store
	cli.Repo = app.Repo
	cli.Sessions = app.Sessions
	cli.Reporter = app.Reporter
	cli.Publisher = app.Publisher
	cli.Notifier = app.Notifier
	cli.EventLog = app.EventLog

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines where fokus keeps its data: the FOKUS_HOME
// environment variable if set, otherwise the nearest ancestor directory
// containing .fokusconfig, otherwise the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("FOKUS_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".fokusconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time: time.Now().UTC(),
		Type: eventType,
		Data: data,
	})
}
