package http

import (
	"context"

	"github.com/MKhiriev/go-bloglist/models"
)

type mockTokenService struct {
	issueFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn func(ctx context.Context, raw string) (models.TokenClaims, error)
}

func (m *mockTokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockTokenService) Verify(ctx context.Context, raw string) (models.TokenClaims, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, raw)
	}
	return models.TokenClaims{}, nil
}

type mockAuthService struct {
	registerFn  func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn     func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	listUsersFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.LoginResponse{}, nil
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

type mockBlogService struct {
	listFn   func(ctx context.Context) ([]models.Blog, error)
	createFn func(ctx context.Context, req models.CreateBlogRequest, actor models.TokenClaims) (models.Blog, error)
	updateFn func(ctx context.Context, id string, update models.BlogUpdate, actor models.TokenClaims) (models.Blog, error)
	deleteFn func(ctx context.Context, id string, actor models.TokenClaims) error
	statsFn  func(ctx context.Context) (models.BlogStats, error)
}

func (m *mockBlogService) List(ctx context.Context) ([]models.Blog, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockBlogService) Create(ctx context.Context, req models.CreateBlogRequest, actor models.TokenClaims) (models.Blog, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req, actor)
	}
	return models.Blog{}, nil
}

func (m *mockBlogService) Update(ctx context.Context, id string, update models.BlogUpdate, actor models.TokenClaims) (models.Blog, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update, actor)
	}
	return models.Blog{}, nil
}

func (m *mockBlogService) Delete(ctx context.Context, id string, actor models.TokenClaims) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, actor)
	}
	return nil
}

func (m *mockBlogService) Stats(ctx context.Context) (models.BlogStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.BlogStats{}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}
