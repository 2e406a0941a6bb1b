package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/handler"
	"github.com/MKhiriev/go-bloglist/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop signal received, shutting down")
	s.Shutdown()

	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
