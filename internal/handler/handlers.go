package handler

import (
	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/handler/http"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	var opts []http.Option
	if cfg.StaticDir != "" {
		opts = append(opts, http.WithStaticDir(cfg.StaticDir))
	}

	return &Handlers{HTTP: http.NewHandler(services, logger, opts...)}, nil
}
