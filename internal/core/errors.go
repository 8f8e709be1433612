package core

import (
	"errors"
	"fmt"
)

// Alert is the payload the core hands to the presentation layer for modal
// display. The core never blocks waiting for acknowledgment.
type Alert struct {
	Title   string
	Content string
}

// Policy rejection codes.
const (
	RejectDailyCap      = "daily_cap"
	RejectMainIdeaMove  = "main_idea_move"
	RejectMainIdeaFocus = "main_idea_focus"
	RejectLockoutActive = "lockout_active"
)

// ValidationError marks a caller contract violation: an empty title, a
// too-short stop reason, or acting with no active session. The operation is
// a no-op and the message is surfaced inline, not modally.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PolicyError marks an operation refused by behavioral policy: the daily
// cap, a main-idea relocation attempt, or an active lockout. State is
// unchanged and the attached Alert is shown modally. It is deliberately
// non-fatal; every guard failure degrades to a no-op plus a message.
type PolicyError struct {
	Code  string
	Alert Alert
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Alert.Content)
}

// AsPolicy unwraps err as a PolicyError, or returns nil.
func AsPolicy(err error) *PolicyError {
	var pe *PolicyError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}
