package core

// EventLogger is the subset of the observability event log the state engine
// needs. Defining it here keeps core independent of the observability
// package; implementations may be nil, in which case events are dropped.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}
