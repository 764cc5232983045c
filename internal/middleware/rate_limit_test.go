package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func hitLimited(rl *RateLimiter, remoteAddr string) int {
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_BurstThenThrottle(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if code := hitLimited(rl, "10.0.0.1:4000"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i+1, code, http.StatusOK)
		}
	}
	if code := hitLimited(rl, "10.0.0.1:4000"); code != http.StatusTooManyRequests {
		t.Fatalf("over-budget request status = %d, want %d", code, http.StatusTooManyRequests)
	}

	// other clients keep their own budget
	if code := hitLimited(rl, "10.0.0.2:4000"); code != http.StatusOK {
		t.Fatalf("other client status = %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiter_InstancesDoNotShareState(t *testing.T) {
	first := NewRateLimiter(1, 2)
	for i := 0; i < 2; i++ {
		hitLimited(first, "127.0.0.1:5000")
	}
	if code := hitLimited(first, "127.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("exhausted limiter status = %d, want %d", code, http.StatusTooManyRequests)
	}

	// a freshly constructed limiter starts with a full bucket for the same IP
	second := NewRateLimiter(1, 2)
	if code := hitLimited(second, "127.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("fresh limiter status = %d, want %d", code, http.StatusOK)
	}
}
