package offline

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"wordbook/internal/metrics"
)

// TransportConfig configures the intercepting transport.
type TransportConfig struct {
	// Base performs the real network fetch. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper
	// Static receives cache-first entries, Runtime network-first ones.
	Static  Bucket
	Runtime Bucket
	// APIOrigin is the definitions-API origin, e.g.
	// "https://api.dictionaryapi.dev". Requests to its host are
	// classified volatile.
	APIOrigin string
	// FallbackURL, if set, names the precached baseline page served
	// when a static fetch fails offline.
	FallbackURL string
}

// Transport is an http.RoundTripper that applies one of the two caching
// strategies to every request passing through it. Each intercepted
// request terminates in either a returned response or a propagated
// error; it is never left pending.
type Transport struct {
	base        http.RoundTripper
	static      Bucket
	runtime     Bucket
	apiHost     string
	fallbackKey string
}

// NewTransport builds a Transport from the config. The APIOrigin must be
// a parseable URL when set.
func NewTransport(cfg TransportConfig) (*Transport, error) {
	base := cfg.Base
	if base == nil {
		base = http.DefaultTransport
	}
	var apiHost string
	if cfg.APIOrigin != "" {
		u, err := url.Parse(cfg.APIOrigin)
		if err != nil {
			return nil, err
		}
		apiHost = u.Host
	}
	var fallbackKey string
	if cfg.FallbackURL != "" {
		fallbackKey = http.MethodGet + " " + cfg.FallbackURL
	}
	return &Transport{
		base:        base,
		static:      cfg.Static,
		runtime:     cfg.Runtime,
		apiHost:     apiHost,
		fallbackKey: fallbackKey,
	}, nil
}

// RoundTrip classifies the request and dispatches to the matching
// strategy.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if Classify(req.URL, t.apiHost) == ClassVolatile {
		return t.NetworkFirst(req)
	}
	return t.CacheFirst(req)
}

// CacheFirst serves static requests: stored copy wins, the network is
// only consulted on a miss. A successful fetch is stored before being
// returned. When the fetch itself fails, the precached baseline page is
// served if present, otherwise the error propagates.
func (t *Transport) CacheFirst(req *http.Request) (*http.Response, error) {
	key := RequestKey(req)

	cr, err := t.static.Match(key)
	if err != nil {
		// A broken store read degrades to a miss.
		slog.Error("static cache lookup failed", "key", key, "error", err)
	}
	if cr != nil {
		metrics.RecordOffline("cache_first", "hit")
		return cr.HTTPResponse(req), nil
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		if t.fallbackKey != "" {
			fallback, matchErr := t.static.Match(t.fallbackKey)
			if matchErr != nil {
				slog.Error("offline fallback lookup failed", "key", t.fallbackKey, "error", matchErr)
			}
			if fallback != nil {
				metrics.RecordOffline("cache_first", "fallback")
				return fallback.HTTPResponse(req), nil
			}
		}
		metrics.RecordOffline("cache_first", "error")
		return nil, err
	}

	t.store(t.static, key, resp)
	metrics.RecordOffline("cache_first", "network")
	return resp, nil
}

// NetworkFirst serves volatile API requests: the network is tried first
// and a successful response is stored before being returned. On a
// network-level failure the stored copy for the same key is served; when
// there is none, a structured offline response is synthesized instead of
// propagating the raw failure.
func (t *Transport) NetworkFirst(req *http.Request) (*http.Response, error) {
	key := RequestKey(req)

	resp, err := t.base.RoundTrip(req)
	if err == nil {
		t.store(t.runtime, key, resp)
		metrics.RecordOffline("network_first", "network")
		return resp, nil
	}

	cr, matchErr := t.runtime.Match(key)
	if matchErr != nil {
		slog.Error("runtime cache lookup failed", "key", key, "error", matchErr)
	}
	if cr != nil {
		metrics.RecordOffline("network_first", "fallback")
		return cr.HTTPResponse(req), nil
	}

	slog.Warn("offline with no cached copy", "key", key, "error", err)
	metrics.RecordOffline("network_first", "offline")
	return offlineResponse(req), nil
}

// store snapshots a successful response into the given bucket. Non-2xx
// responses and store failures are not fatal to the request.
func (t *Transport) store(bucket Bucket, key string, resp *http.Response) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return
	}
	cr, err := Snapshot(resp)
	if err != nil {
		slog.Error("response snapshot failed", "key", key, "error", err)
		return
	}
	if err := bucket.Put(key, cr); err != nil {
		slog.Error("response store failed", "key", key, "error", err)
	}
}

const offlineBody = `{"status":"error","error":"offline: no network and no cached response"}`

// offlineResponse is the synthesized answer when both the network and
// the runtime store miss. It is a normal response carrying a 503 status,
// not an error, so callers branching on status codes handle it uniformly.
func offlineResponse(req *http.Request) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("X-Offline", "1")
	return &http.Response{
		Status:        "503 " + http.StatusText(http.StatusServiceUnavailable),
		StatusCode:    http.StatusServiceUnavailable,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(offlineBody)),
		ContentLength: int64(len(offlineBody)),
		Request:       req,
	}
}
