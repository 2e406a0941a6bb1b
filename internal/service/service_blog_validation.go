package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/internal/validators"
	"github.com/MKhiriev/go-bloglist/models"
)

// BlogValidationService rejects malformed blog payloads and ids before they
// reach the wrapped BlogService.
type BlogValidationService struct {
	inner     BlogService
	validator validators.Validator
}

func NewBlogValidationService() BlogServiceWrapper {
	return &BlogValidationService{
		validator: validators.NewBlogValidator(),
	}
}

func (v *BlogValidationService) List(ctx context.Context) ([]models.Blog, error) {
	return v.inner.List(ctx)
}

func (v *BlogValidationService) Create(ctx context.Context, req models.CreateBlogRequest, actor models.TokenClaims) (models.Blog, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Blog{}, fmt.Errorf("error during blog validation before saving: %w", err)
	}

	return v.inner.Create(ctx, req, actor)
}

func (v *BlogValidationService) Update(ctx context.Context, id string, update models.BlogUpdate, actor models.TokenClaims) (models.Blog, error) {
	if _, err := utils.ParseID(id); err != nil {
		return models.Blog{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Blog{}, fmt.Errorf("error during blog validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, update, actor)
}

func (v *BlogValidationService) Delete(ctx context.Context, id string, actor models.TokenClaims) error {
	if _, err := utils.ParseID(id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id, actor)
}

func (v *BlogValidationService) Stats(ctx context.Context) (models.BlogStats, error) {
	return v.inner.Stats(ctx)
}

func (v *BlogValidationService) Wrap(inner BlogService) BlogService {
	v.inner = inner
	return v
}
