package middlewares

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit caps how often an endpoint can be hit. Used on the
// lead-capture routes; the forms are human-paced, so a small burst on
// top of a slow refill is plenty.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
