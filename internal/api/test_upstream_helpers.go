package api

import (
	"io"
	"net/http"
	"sync"
	"testing"
)

// upstreamRecorder captures every request the handlers made to the fake
// remote service so tests can assert on paths, headers, and payloads.
type upstreamRecorder struct {
	mu       sync.Mutex
	requests []recordedUpstreamRequest
}

type recordedUpstreamRequest struct {
	Method string
	Path   string
	Query  string
	UserID string
	Body   []byte
}

func (recorder *upstreamRecorder) record(r *http.Request) recordedUpstreamRequest {
	body, _ := io.ReadAll(r.Body)
	recorded := recordedUpstreamRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		UserID: r.Header.Get("X-User-ID"),
		Body:   body,
	}

	recorder.mu.Lock()
	recorder.requests = append(recorder.requests, recorded)
	recorder.mu.Unlock()
	return recorded
}

func (recorder *upstreamRecorder) count() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return len(recorder.requests)
}

func (recorder *upstreamRecorder) last(t *testing.T) recordedUpstreamRequest {
	t.Helper()
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if len(recorder.requests) == 0 {
		t.Fatal("no upstream requests were recorded")
	}
	return recorder.requests[len(recorder.requests)-1]
}

func (recorder *upstreamRecorder) find(t *testing.T, method string, path string) recordedUpstreamRequest {
	t.Helper()
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	for _, request := range recorder.requests {
		if request.Method == method && request.Path == path {
			return request
		}
	}
	t.Fatalf("no recorded upstream request %s %s", method, path)
	return recordedUpstreamRequest{}
}
