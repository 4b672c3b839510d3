package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	const limit = 50
	detector := NewSuspiciousActivityDetector(limit, time.Minute)
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < limit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	if count := detector.Count(ip); count != limit+1 {
		t.Errorf("expected count %d, got %d", limit+1, count)
	}

	// Other clients are unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got %d", rec.Code)
	}
}

func TestSuspiciousActivityDetector_WindowExpires(t *testing.T) {
	detector := NewSuspiciousActivityDetector(1, 50*time.Millisecond)

	if !detector.RecordRequest("10.0.0.9") {
		t.Fatal("first request should pass")
	}
	if detector.RecordRequest("10.0.0.9") {
		t.Fatal("second request in the window should be blocked")
	}

	time.Sleep(150 * time.Millisecond)

	if !detector.RecordRequest("10.0.0.9") {
		t.Error("request after the window should pass")
	}
}

func TestSuspiciousActivityDetector_Disabled(t *testing.T) {
	detector := NewSuspiciousActivityDetector(0, time.Minute)
	if detector.Enabled() {
		t.Fatal("zero limit should disable the detector")
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := SecurityLoggingMiddleware(nil, detector)(next)

	for i := 0; i < 5000; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d blocked with detector disabled", i)
		}
	}
	if detector.Count("192.0.2.1") != 0 {
		t.Error("disabled detector should not count requests")
	}
}
