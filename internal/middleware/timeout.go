package middleware

import (
	"net/http"
	"time"
)

// DefaultRequestTimeout bounds every request, including ones suspended on
// the outbound token exchange.
const DefaultRequestTimeout = 30 * time.Second

// Timeout enforces a deadline on request handlers.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		// TimeoutHandler also puts a matching deadline on the request
		// context, so outbound calls like the token exchange get cancelled.
		return http.TimeoutHandler(next, timeout, "Request Timeout")
	}
}
