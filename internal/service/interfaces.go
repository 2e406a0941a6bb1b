package service

import (
	"context"

	"github.com/MKhiriev/go-bloglist/models"
)

// TokenService issues and verifies the bearer tokens handed out at login.
type TokenService interface {
	// Issue signs a token for user. Fails with ErrTokenCreationFailed.
	Issue(ctx context.Context, user models.User) (models.Token, error)
	// Verify checks raw and returns the claims it carries. Fails with
	// ErrInvalidToken, ErrTokenExpired or ErrTokenWithoutUser.
	Verify(ctx context.Context, raw string) (models.TokenClaims, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogService manages blogs on behalf of an authenticated actor. Only the
// creator of a blog may update or delete it.
type BlogService interface {
	List(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, req models.CreateBlogRequest, actor models.TokenClaims) (models.Blog, error)
	Update(ctx context.Context, id string, update models.BlogUpdate, actor models.TokenClaims) (models.Blog, error)
	Delete(ctx context.Context, id string, actor models.TokenClaims) error
	Stats(ctx context.Context) (models.BlogStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// BlogServiceWrapper defines middleware composition for BlogService.
type BlogServiceWrapper interface {
	Wrap(BlogService) BlogService
}
