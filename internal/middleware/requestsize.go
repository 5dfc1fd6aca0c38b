package middleware

import (
	"net/http"
)

// DefaultMaxRequestSize is the default maximum request body size (64KB).
// The API accepts no request bodies, so anything larger is hostile.
const DefaultMaxRequestSize int64 = 64 << 10

// MaxRequestSize caps request body size.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
