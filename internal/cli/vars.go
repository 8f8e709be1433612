package cli

import (
	"github.com/fokus-app/fokus/internal/core"
	"github.com/fokus-app/fokus/internal/integration"
	"github.com/fokus-app/fokus/internal/observability"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath string
	Policy   core.Policy

	Store    *core.Store
	Repo     *core.Repository
	Sessions *core.SessionController
	Reporter *core.Reporter

	Publisher integration.TextPublisher
	Notifier  observability.Notifier
	EventLog  observability.EventLog
)
