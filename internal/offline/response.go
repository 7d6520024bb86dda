// Package offline implements the transport-level response cache: every
// outgoing request is classified and served cache-first (static assets)
// or network-first with a stored fallback (definition API responses).
package offline

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CachedResponse is the persisted snapshot of an HTTP response. It is
// stored JSON-encoded in the blob store.
type CachedResponse struct {
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"header"`
	Body       []byte      `json:"body"`
	StoredAt   time.Time   `json:"stored_at"`
}

// RequestKey derives the store key for a request. The workload is
// GET-only in practice, but the method is kept in the key so other verbs
// never collide.
func RequestKey(req *http.Request) string {
	return req.Method + " " + req.URL.String()
}

// Snapshot drains resp.Body into a CachedResponse and replaces the body
// so the caller can still read it.
func Snapshot(resp *http.Response) (*CachedResponse, error) {
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("snapshot response body: %w", err)
	}
	return &CachedResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
		StoredAt:   time.Now(),
	}, nil
}

// HTTPResponse rebuilds a servable *http.Response from the snapshot.
func (cr *CachedResponse) HTTPResponse(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", cr.StatusCode, http.StatusText(cr.StatusCode)),
		StatusCode:    cr.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        cr.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(cr.Body)),
		ContentLength: int64(len(cr.Body)),
		Request:       req,
	}
}
