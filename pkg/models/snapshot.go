package models

// Snapshot is the full persisted application state: the task collection in
// display order (newest first), the focus-session markers, and the
// accountability record. It is serialized as a single blob keyed by a
// schema-version string; the whole snapshot is one consistency unit.
type Snapshot struct {
	Tasks []*Task `yaml:"tasks"`

	// IsFocusMode and ActiveTaskID track the live focus session. At most
	// one task is active at a time; the active task is referenced here,
	// never flagged on the Task itself.
	IsFocusMode  bool   `yaml:"is_focus_mode"`
	ActiveTaskID string `yaml:"active_task_id,omitempty"`

	Accountability Accountability `yaml:"accountability"`

	// TaskCounter backs sequential ID generation.
	TaskCounter int `yaml:"task_counter"`
}

// DefaultSnapshot returns the fresh state used on first run or when a
// persisted snapshot cannot be restored: no tasks, no session, a full
// reputation score, and no streak history.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Accountability: Accountability{
			ReputationScore: 100,
		},
	}
}
