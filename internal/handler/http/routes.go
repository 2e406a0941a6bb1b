package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, withCORS())

	// must be set before routes so that every sub-router inherits them
	router.NotFound(h.notFound())
	router.MethodNotAllowed(unknownEndpoint)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/healthz", h.healthz)
		r.Post("/api/login", h.login)
		r.Post("/api/users", h.registerUser)
		r.Get("/api/users", h.listUsers)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.tokenExtractor, h.userExtractor)

		r.Get("/api/blogs", h.listBlogs)
		r.Post("/api/blogs", h.createBlog)
		r.Get("/api/blogs/stats", h.blogStats)
		r.Put("/api/blogs/{id}", h.updateBlog)
		r.Delete("/api/blogs/{id}", h.deleteBlog)
	})

	return router
}

// notFound serves the static frontend for GET requests outside /api when a
// static directory is configured. Everything else is an unknown endpoint.
func (h *Handler) notFound() http.HandlerFunc {
	if h.staticDir == "" {
		return unknownEndpoint
	}

	files := http.FileServer(http.Dir(h.staticDir))
	return func(w http.ResponseWriter, r *http.Request) {
		isRead := r.Method == http.MethodGet || r.Method == http.MethodHead
		if !isRead || r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			unknownEndpoint(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
