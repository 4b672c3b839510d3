package server

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/shooter-mock-api/internal/handler"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// RecoverMiddleware turns a handler panic into the generic 500 JSON body
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error(LogMsgPanicRecovered,
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()))

			handler.RespondInternalError(w)
		}()

		next.ServeHTTP(w, r)
	})
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				handler.RespondTooLarge(w)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows browser clients from the configured origin and answers preflight requests
func CORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderAllowOrigin, allowedOrigin)
			w.Header().Set(HeaderAllowMethods, CORSAllowedMethods)
			w.Header().Set(HeaderAllowHeaders, CORSAllowedHeaders)

			if r.Method == http.MethodOptions {
				w.Header().Set(HeaderMaxAge, CORSMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestCounter is the per-IP tally for one window
type requestCounter struct {
	mu    sync.Mutex
	count int
}

// SuspiciousActivityDetector counts requests per client IP in fixed windows
type SuspiciousActivityDetector struct {
	limit int
	mu    sync.Mutex
	ips   *expirable.LRU[string, *requestCounter]
}

// NewSuspiciousActivityDetector allows limit requests per IP per window.
// A limit of zero or less disables blocking.
func NewSuspiciousActivityDetector(limit int, window time.Duration) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		limit: limit,
		ips:   expirable.NewLRU[string, *requestCounter](DetectorCapacity, nil, window),
	}
}

// Enabled reports whether requests can be blocked
func (s *SuspiciousActivityDetector) Enabled() bool {
	return s.limit > 0
}

// RecordRequest records a request for rate monitoring and returns false if rate limit exceeded
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	if !s.Enabled() {
		return true
	}

	// The window starts at the first request; Get does not extend it
	s.mu.Lock()
	counter, ok := s.ips.Get(ip)
	if !ok {
		counter = &requestCounter{}
		s.ips.Add(ip, counter)
	}
	s.mu.Unlock()

	counter.mu.Lock()
	counter.count++
	count := counter.count
	counter.mu.Unlock()

	if count > s.limit {
		if count%highRateLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", count)
		}
		return false
	}
	return true
}

// Count returns the requests seen from ip in its current window
func (s *SuspiciousActivityDetector) Count(ip string) int {
	counter, ok := s.ips.Peek(ip)
	if !ok {
		return 0
	}
	counter.mu.Lock()
	defer counter.mu.Unlock()
	return counter.count
}

// SecurityLoggingMiddleware enforces the per-IP request limit
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !detector.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				handler.RespondTooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		forwarded := r.Header.Get(HeaderForwardedFor)
		if forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			// Prevent clickjacking
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			// Enable XSS protection (for older browsers)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			// Control referrer information
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
