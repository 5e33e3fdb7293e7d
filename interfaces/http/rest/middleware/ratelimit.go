package middleware

import (
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"knowcore/pkg/common"
	"knowcore/pkg/observability"
	"knowcore/pkg/ratelimit"
)

// RateLimit creates a middleware that limits requests per client IP using a
// sliding window. Denied requests are still recorded against the window, so
// a client hammering the API stays shut out until it actually backs off.
func RateLimit(limiter *ratelimit.SlidingWindow, metrics *observability.Collector, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.RecordAndCheck(key, time.Now()) {
				metrics.RequestsDenied.Inc()
				logger.Warn("request rate limited",
					zap.String("clientIP", key),
					zap.String("path", r.URL.Path),
				)
				common.RespondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}

			metrics.RequestsAdmitted.Inc()
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client address. The RealIP middleware runs first, so
// RemoteAddr already reflects X-Forwarded-For when present; it may or may not
// carry a port depending on how it was rewritten.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
