package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSConfig holds the cross-origin policy for browser callers.
type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows browser front-ends on the configured origins to call the API.
// The API is unauthenticated, so credentials are never allowed.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: false,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "traceparent", "tracestate"},
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:           cfg.MaxAge,
	})
}
