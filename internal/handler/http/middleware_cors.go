package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows cross-origin calls from any origin, as the bundled
// frontend may be served from a different host during development.
func withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
