package core

import (
	"fmt"
	"time"
)

// Reputation adjustments per session outcome.
const (
	reputationCompleteBonus = 10
	reputationStreakBonus   = 5
	reputationStopPenalty   = 5
	reputationGapPenalty    = 10
)

// Engine is the policy brain: it derives failure counts, lockouts, streaks,
// and the reputation score from session outcomes. It only mutates the
// accountability record; committing the snapshot is the caller's job.
type Engine struct {
	store  *Store
	clock  Clock
	policy Policy
}

// NewEngine creates an Engine over the given store.
func NewEngine(store *Store, clock Clock, policy Policy) *Engine {
	return &Engine{store: store, clock: clock, policy: policy}
}

// RecordFailure applies the immediate cost of an abandoned session: a
// reputation penalty and the day-scoped failure count. The count resets to
// 1 (not 0) when the previous failure was on an earlier day, because the
// failure being recorded is itself the first of the new day.
func (e *Engine) RecordFailure(now time.Time) {
	a := e.store.Accountability()
	a.ReputationScore = clampScore(a.ReputationScore - reputationStopPenalty)
	if SameDay(a.LastFailedDate, now) {
		a.FailedAttempts++
	} else {
		a.FailedAttempts = 1
	}
	a.LastFailedDate = now
}

// ApplyConsequence evaluates the current failure count and returns the
// resulting alert: a lockout at the threshold, a warning one short of it,
// nothing below that. The returned bool reports whether a lockout was
// imposed. Re-invocation with an unchanged count re-applies the lockout
// window from now; callers invoke it exactly once per failed session.
func (e *Engine) ApplyConsequence() (*Alert, bool) {
	a := e.store.Accountability()
	now := e.clock.Now()

	switch {
	case a.FailedAttempts >= e.policy.FailureThreshold:
		a.LockoutUntil = now.Add(e.policy.LockoutDuration)
		return &Alert{
			Title: "🔒 MODE TERKUNCI",
			Content: fmt.Sprintf("Gagal fokus %d kali hari ini. Sesi baru dikunci sampai %s.",
				a.FailedAttempts, a.LockoutUntil.Local().Format("15:04")),
		}, true
	case a.FailedAttempts == e.policy.FailureThreshold-1:
		return &Alert{
			Title: "⚠️ Peringatan",
			Content: fmt.Sprintf("Sekali lagi gagal fokus, sesi baru dikunci %d menit.",
				int(e.policy.LockoutDuration.Minutes())),
		}, false
	default:
		return nil, false
	}
}

// RecordCompletion applies the completion reward, then the streak update.
func (e *Engine) RecordCompletion(now time.Time) {
	a := e.store.Accountability()
	a.ReputationScore = clampScore(a.ReputationScore + reputationCompleteBonus)
	e.UpdateStreak(now)
}

// UpdateStreak compares the previous active day with now, by calendar day.
// A completion on the same day is a no-op so multiple completions never
// double-count; a completion the day after the last one extends the streak;
// a completion after a skipped day resets it with a reputation penalty. The
// first completion ever starts the streak at one day with no penalty.
func (e *Engine) UpdateStreak(now time.Time) {
	a := e.store.Accountability()
	prev := a.LastActiveDate

	switch {
	case SameDay(prev, now):
		// Already counted today.
	case IsYesterday(prev, now):
		a.CurrentStreak++
		a.ReputationScore = clampScore(a.ReputationScore + reputationStreakBonus)
	case prev.IsZero():
		a.CurrentStreak = 1
	default:
		a.CurrentStreak = 0
		a.ReputationScore = clampScore(a.ReputationScore - reputationGapPenalty)
	}
	if a.CurrentStreak > a.LongestStreak {
		a.LongestStreak = a.CurrentStreak
	}

	a.LastActiveDate = now
}

// FailedToday returns the failure count for the current calendar day. The
// stored count belongs to LastFailedDate's day; on any other day it reads
// as zero.
func (e *Engine) FailedToday(now time.Time) int {
	a := e.store.Accountability()
	if SameDay(a.LastFailedDate, now) {
		return a.FailedAttempts
	}
	return 0
}

// clampScore bounds the reputation score to [0,100].
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
