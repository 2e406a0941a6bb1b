package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bloglist/internal/validators"
	"github.com/MKhiriev/go-bloglist/models"
)

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before registering: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResponse{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
