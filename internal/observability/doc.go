// Package observability provides the append-only activity log and the
// accountability-partner webhook. Events are persisted as structured JSON
// Lines (JSONL); the log is the audit trail of every state transition the
// engine makes.
package observability
