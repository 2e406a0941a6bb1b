package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second

	requestTimeoutBody = `{"error":"request timed out"}`
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// newHTTPServer wraps router with http.TimeoutHandler when a request
// timeout is configured.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	handler := router
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(router, cfg.RequestTimeout, requestTimeoutBody)
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// RunServer blocks until the server is shut down. A clean shutdown returns nil.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTP server shutdown")
	}
}
