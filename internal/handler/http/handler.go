package http

import (
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/service"
)

type Handler struct {
	services *service.Services

	// staticDir is served for non-API paths when set.
	staticDir string

	logger *logger.Logger
}

type Option func(*Handler)

// WithStaticDir serves the files in dir for every GET outside /api.
func WithStaticDir(dir string) Option {
	return func(h *Handler) {
		h.staticDir = dir
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
