package service

import (
	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/store"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	BlogService    BlogService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires every service on top of storages. Auth and blog
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)

	authService := NewAuthValidationService().
		Wrap(NewAuthService(storages.UserRepository, tokenService, cfg.App, logger))
	blogService := NewBlogValidationService().
		Wrap(NewBlogService(storages.BlogRepository, logger))

	return &Services{
		TokenService:   tokenService,
		AuthService:    authService,
		BlogService:    blogService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.HealthChecker, logger),
	}, nil
}
