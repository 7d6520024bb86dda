// Package dictionary resolves word queries against the public
// definitions API, with the in-memory lookup cache as the fast path.
package dictionary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"wordbook/internal/cache"
	"wordbook/internal/metrics"
	"wordbook/internal/models"
)

// entryPath is the upstream path for English entries.
const entryPath = "/api/v2/entries/en/"

// Client is the fetch-with-cache orchestrator.
type Client struct {
	http   *http.Client
	cache  *cache.Cache[[]models.Entry]
	origin string
}

// New creates a client for the given upstream origin, e.g.
// "https://api.dictionaryapi.dev". The http.Client is expected to carry
// the offline transport so API requests get the network-first treatment.
func New(hc *http.Client, lookupCache *cache.Cache[[]models.Entry], origin string) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		http:   hc,
		cache:  lookupCache,
		origin: strings.TrimRight(origin, "/"),
	}
}

// Normalize produces the cache key for a query term.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Lookup resolves a word to its dictionary entries. A valid cache hit is
// returned without any network request. On a miss exactly one upstream
// request is issued; a decoded success is cached before being returned.
// The cache is never mutated on failure. Errors are *NotFoundError when
// the upstream reports the term unknown, *NetworkError otherwise. No
// retries happen at this layer.
func (c *Client) Lookup(ctx context.Context, word string) ([]models.Entry, error) {
	key := Normalize(word)

	if entries, ok := c.cache.Get(key); ok {
		metrics.RecordLookupCache(true)
		return entries, nil
	}
	metrics.RecordLookupCache(false)

	rawurl := c.origin + entryPath + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawurl, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstream("error")
		return nil, &NetworkError{URL: rawurl, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RecordUpstream("not_found")
		return nil, &NotFoundError{Word: key}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		metrics.RecordUpstream("error")
		return nil, &NetworkError{URL: rawurl, StatusCode: resp.StatusCode}
	}

	var entries []models.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		metrics.RecordUpstream("error")
		return nil, &NetworkError{URL: rawurl, Err: err}
	}

	c.cache.Set(key, entries)
	metrics.RecordUpstream("ok")
	return entries, nil
}

// ClearCache drops every cached lookup.
func (c *Client) ClearCache() {
	c.cache.Clear()
}
