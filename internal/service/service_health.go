package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/store"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	checker store.HealthChecker

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

// Check reports whether the database answers within healthCheckTimeout.
func (h *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := h.checker.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database is unhealthy")
		return err
	}
	return nil
}
