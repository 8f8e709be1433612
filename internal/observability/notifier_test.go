package observability

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookNotifier(t *testing.T) {
	var received webhookMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL)
	if err := n.Notify("🔒 MODE TERKUNCI", "Gagal fokus 3 kali hari ini."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.Title != "🔒 MODE TERKUNCI" {
		t.Fatalf("title lost: %q", received.Title)
	}
	if received.Content != "Gagal fokus 3 kali hari ini." {
		t.Fatalf("content lost: %q", received.Content)
	}
	if received.SentAt.IsZero() {
		t.Fatal("sent_at must be stamped")
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL)
	if err := n.Notify("judul", "isi"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
