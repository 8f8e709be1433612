// Package integration holds the host-facing adapters: the clipboard
// publisher used for sharing commitments and reports, and the terminal
// fullscreen toggle bound to focus sessions.
package integration

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// TextPublisher hands text to an external surface the user can paste from.
type TextPublisher interface {
	PublishText(text string) error
}

type clipboardPublisher struct{}

// NewClipboardPublisher creates a TextPublisher backed by the system clipboard.
func NewClipboardPublisher() TextPublisher {
	return clipboardPublisher{}
}

func (clipboardPublisher) PublishText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	return nil
}
