package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"wordbook/internal/cache"
	"wordbook/internal/models"
)

const helloPayload = `[{"word":"hello","phonetic":"/həˈləʊ/","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A greeting."}]}]}]`

func newUpstream(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		word := strings.TrimPrefix(r.URL.Path, "/api/v2/entries/en/")
		switch word {
		case "hello":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(helloPayload))
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		case "garbled":
			w.Write([]byte("{not json"))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"title":"No Definitions Found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newClient(srv *httptest.Server) (*Client, *cache.Cache[[]models.Entry]) {
	lookupCache := cache.New[[]models.Entry](time.Hour, 50)
	return New(srv.Client(), lookupCache, srv.URL), lookupCache
}

func TestLookup_DecodesEntries(t *testing.T) {
	srv, _ := newUpstream(t)
	client, _ := newClient(srv)

	entries, err := client.Lookup(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Word != "hello" {
		t.Errorf("Word = %q", entries[0].Word)
	}
	if len(entries[0].Meanings) != 1 || entries[0].Meanings[0].PartOfSpeech != "noun" {
		t.Errorf("Meanings = %+v", entries[0].Meanings)
	}
}

func TestLookup_SecondCallHitsCache(t *testing.T) {
	srv, requests := newUpstream(t)
	client, _ := newClient(srv)

	if _, err := client.Lookup(context.Background(), "hello"); err != nil {
		t.Fatalf("first Lookup: %v", err)
	}
	entries, err := client.Lookup(context.Background(), "hello")
	if err != nil {
		t.Fatalf("second Lookup: %v", err)
	}
	if entries[0].Word != "hello" {
		t.Errorf("Word = %q", entries[0].Word)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("expected exactly 1 upstream request, got %d", got)
	}
}

func TestLookup_NormalizesQuery(t *testing.T) {
	srv, requests := newUpstream(t)
	client, _ := newClient(srv)

	if _, err := client.Lookup(context.Background(), "Hello"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := client.Lookup(context.Background(), "  hello  "); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("expected case/space variants to share one cache entry, got %d requests", got)
	}
}

func TestLookup_NotFound(t *testing.T) {
	srv, _ := newUpstream(t)
	client, lookupCache := newClient(srv)

	_, err := client.Lookup(context.Background(), "zzzxnotaword")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if notFound.Word != "zzzxnotaword" {
		t.Errorf("Word = %q", notFound.Word)
	}
	if lookupCache.Len() != 0 {
		t.Error("a failed lookup must not mutate the cache")
	}
}

func TestLookup_UpstreamErrorStatus(t *testing.T) {
	srv, _ := newUpstream(t)
	client, lookupCache := newClient(srv)

	_, err := client.Lookup(context.Background(), "broken")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if netErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", netErr.StatusCode)
	}
	if lookupCache.Len() != 0 {
		t.Error("a failed lookup must not mutate the cache")
	}
}

func TestLookup_MalformedPayload(t *testing.T) {
	srv, _ := newUpstream(t)
	client, lookupCache := newClient(srv)

	_, err := client.Lookup(context.Background(), "garbled")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if lookupCache.Len() != 0 {
		t.Error("a failed decode must not mutate the cache")
	}
}

func TestLookup_UnreachableUpstream(t *testing.T) {
	srv, _ := newUpstream(t)
	origin := srv.URL
	srv.Close()

	client := New(&http.Client{Timeout: time.Second}, cache.New[[]models.Entry](time.Hour, 50), origin)

	_, err := client.Lookup(context.Background(), "hello")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if netErr.Unwrap() == nil {
		t.Error("expected the transport error to be wrapped")
	}
}

func TestClearCache(t *testing.T) {
	srv, requests := newUpstream(t)
	client, _ := newClient(srv)

	if _, err := client.Lookup(context.Background(), "hello"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	client.ClearCache()
	if _, err := client.Lookup(context.Background(), "hello"); err != nil {
		t.Fatalf("Lookup after clear: %v", err)
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("expected a fresh upstream request after ClearCache, got %d total", got)
	}
}
