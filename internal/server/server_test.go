package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordbook/internal/cache"
	"wordbook/internal/config"
	"wordbook/internal/dictionary"
	"wordbook/internal/models"
	"wordbook/internal/offline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:        "development",
		ServerAddr: ":0",
		BaseURL:    "http://localhost:3000",
		APIOrigin:  "https://api.dictionaryapi.dev",
		SiteTitle:  "Wordbook",
	}
	srv := New(cfg)

	storage := offline.NewStorage(offline.NewMemoryKV())
	dict := dictionary.New(http.DefaultClient, cache.New[[]models.Entry](time.Hour, 50), cfg.APIOrigin)
	srv.RegisterRoutes(dict, storage)
	return srv
}

func TestProbes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := srv.App.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}

		body, _ := io.ReadAll(resp.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("GET %s: decode %q: %v", path, body, err)
		}
		if payload["status"] != "ok" {
			t.Errorf("GET %s status = %q", path, payload["status"])
		}
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on every response")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /metrics = %d, want 200", resp.StatusCode)
	}
}
