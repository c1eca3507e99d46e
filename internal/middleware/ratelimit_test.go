package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	next, _ := okHandler()
	h := rl.Middleware(next)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/login", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, rec.Code)
		}
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	next, _ := okHandler()
	h := rl.Middleware(next)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/login", nil)
		r.RemoteAddr = "10.0.0.2:1234"
		h.ServeHTTP(rec, r)
	}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/admin/login", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status: got %d, want 429", rec.Code)
	}
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	next, _ := okHandler()
	h := rl.Middleware(next)

	first := httptest.NewRequest("POST", "/api/admin/login", nil)
	first.RemoteAddr = "10.0.0.3:1234"
	h.ServeHTTP(httptest.NewRecorder(), first)

	// A different client is unaffected by the first client's quota.
	rec := httptest.NewRecorder()
	other := httptest.NewRequest("POST", "/api/admin/login", nil)
	other.RemoteAddr = "10.0.0.4:1234"
	h.ServeHTTP(rec, other)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "127.0.0.1:5000"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	if ip := clientIP(r); ip != "203.0.113.9" {
		t.Errorf("clientIP: got %q, want 203.0.113.9", ip)
	}
}
