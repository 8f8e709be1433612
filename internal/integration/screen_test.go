package integration

import (
	"bytes"
	"strings"
	"testing"
)

func TestTermScreen(t *testing.T) {
	var buf bytes.Buffer
	s := &TermScreen{out: &buf}

	if err := s.SetFullscreen(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[?1049h") {
		t.Fatalf("expected alt-screen enter sequence, got %q", buf.String())
	}

	buf.Reset()
	if err := s.SetFullscreen(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[?1049l") {
		t.Fatalf("expected alt-screen leave sequence, got %q", buf.String())
	}
}

func TestNopScreen(t *testing.T) {
	if err := (NopScreen{}).SetFullscreen(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
