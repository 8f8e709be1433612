package models

import "time"

// Accountability is the process-wide record of focus-session behavior:
// same-day failure counting, temporary lockouts, completion streaks, and the
// bounded reputation score. There is exactly one per snapshot; it is never
// deleted, only mutated by session outcomes.
type Accountability struct {
	// FailedAttempts counts focus sessions abandoned early on the current
	// calendar day. It resets to 1 (not 0) on the first failure of a new
	// day: the failure being recorded is itself the first attempt.
	FailedAttempts int       `yaml:"failed_attempts"`
	LastFailedDate time.Time `yaml:"last_failed_date,omitempty"`

	// LastActiveDate is the day of the most recent completion, used for
	// calendar-day streak comparison.
	LastActiveDate time.Time `yaml:"last_active_date,omitempty"`

	// LockoutUntil, when in the future, refuses new focus sessions.
	LockoutUntil time.Time `yaml:"lockout_until,omitempty"`

	CurrentStreak int `yaml:"current_streak"`
	LongestStreak int `yaml:"longest_streak"`

	// ReputationScore is bounded to [0,100].
	ReputationScore int `yaml:"reputation_score"`
}

// LockedOut reports whether a lockout is active at the given instant.
func (a *Accountability) LockedOut(now time.Time) bool {
	return !a.LockoutUntil.IsZero() && now.Before(a.LockoutUntil)
}
