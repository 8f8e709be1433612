package integration

import (
	"fmt"
	"io"
	"os"
)

// Alternate screen buffer escapes (xterm 1049): entering hides the normal
// scrollback for a distraction-free session, leaving restores it.
const (
	enterAltScreen = "\x1b[?1049h\x1b[2J\x1b[H"
	leaveAltScreen = "\x1b[?1049l"
)

// TermScreen toggles the terminal's alternate screen buffer. It writes the
// escape sequences to stderr so a session driven over stdio (the MCP
// transport) never sees control bytes on its protocol stream.
type TermScreen struct {
	out io.Writer
}

// NewTermScreen creates a TermScreen writing to stderr.
func NewTermScreen() *TermScreen {
	return &TermScreen{out: os.Stderr}
}

// SetFullscreen enters or leaves the alternate screen buffer.
func (s *TermScreen) SetFullscreen(enabled bool) error {
	seq := leaveAltScreen
	if enabled {
		seq = enterAltScreen
	}
	if _, err := fmt.Fprint(s.out, seq); err != nil {
		return fmt.Errorf("toggling fullscreen: %w", err)
	}
	return nil
}

// NopScreen is a Fullscreen implementation that does nothing. Used in tests
// and wherever another layer already owns the terminal.
type NopScreen struct{}

// SetFullscreen implements the interface and always succeeds.
func (NopScreen) SetFullscreen(bool) error { return nil }
