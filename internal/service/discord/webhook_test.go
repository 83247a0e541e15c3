package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSend(t *testing.T) {
	var got webhookMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	wh := New(srv.URL, "Crypto Prophet", 5*time.Second)
	if err := wh.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Content != "hello" {
		t.Errorf("expected content hello, got %q", got.Content)
	}
	if got.Username != "Crypto Prophet" {
		t.Errorf("expected fixed username, got %q", got.Username)
	}
}

func TestSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown webhook", http.StatusNotFound)
	}))
	defer srv.Close()

	wh := New(srv.URL, "Crypto Prophet", 5*time.Second)
	if err := wh.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for failed delivery")
	}
}

func TestSendMissingURL(t *testing.T) {
	wh := New("", "Crypto Prophet", 5*time.Second)
	if err := wh.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for missing webhook URL")
	}
}
