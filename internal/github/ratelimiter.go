package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateTracker passively records GitHub's X-RateLimit-* response headers so
// rate-limit errors can be surfaced with remaining/reset diagnostics. It never
// blocks a request: requests are driven by user traffic, so waiting for a
// reset window would stall the response instead of helping.
type RateTracker struct {
	mu        sync.Mutex
	remaining int
	reset     time.Time
}

func NewRateTracker() *RateTracker {
	return &RateTracker{remaining: -1}
}

func (r *RateTracker) update(headers http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := headers.Get("X-RateLimit-Remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}
	if reset := headers.Get("X-RateLimit-Reset"); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.reset = time.Unix(val, 0)
		}
	}
}

// Snapshot returns the last observed remaining quota and reset time.
// Remaining is -1 when no response has been seen yet.
func (r *RateTracker) Snapshot() (int, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining, r.reset
}

func (r *RateTracker) Middleware(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		r.update(resp.Header)
		return resp, nil
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
