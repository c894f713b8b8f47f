package httpapi

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/parley-labs/parley/internal/core/domain"
)

// rateLimit wraps a handler with a shared token bucket. Requests that find
// the bucket empty are rejected immediately with 429 rather than queued.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, domain.ErrRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}
