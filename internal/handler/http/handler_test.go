package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/service"
	"github.com/MKhiriev/go-bloglist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken   = "valid-token"
	testUserID  = "01928c4e-8f2a-7b3c-9d4e-5f6a7b8c9d0e"
	testBlogID  = "01928c4e-8f2a-7b3c-9d4e-aaaaaaaaaaaa"
	bearerToken = "Bearer " + testToken
)

var testActor = models.TokenClaims{ID: testUserID, Username: "irene"}

// newTestServices returns services whose token service accepts testToken.
func newTestServices() *service.Services {
	return &service.Services{
		TokenService: &mockTokenService{
			verifyFn: func(_ context.Context, raw string) (models.TokenClaims, error) {
				if raw == testToken {
					return testActor, nil
				}
				return models.TokenClaims{}, service.ErrInvalidToken
			},
		},
		AuthService:    &mockAuthService{},
		BlogService:    &mockBlogService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
		HealthService:  &mockHealthService{},
	}
}

func serve(t *testing.T, svcs *service.Services, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	NewHandler(svcs, logger.Nop()).Init().ServeHTTP(rec, req)
	return rec
}

func authHeader() map[string]string {
	return map[string]string{"Authorization": bearerToken}
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Empty(t, h.staticDir)
}

func TestNewHandler_WithStaticDir(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop(), WithStaticDir("/srv/dist"))

	assert.Equal(t, "/srv/dist", h.staticDir)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/healthz"},
		{http.MethodPost, "/api/login"},
		{http.MethodPost, "/api/users"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/blogs"},
		{http.MethodPost, "/api/blogs"},
		{http.MethodGet, "/api/blogs/stats"},
		{http.MethodPut, "/api/blogs/" + testBlogID},
		{http.MethodDelete, "/api/blogs/" + testBlogID},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, newTestServices(), tc.method, tc.path, "{}", authHeader())

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_BlogRoutesRequireAuth(t *testing.T) {
	for _, path := range []string{"/api/blogs", "/api/blogs/stats"} {
		rec := serve(t, newTestServices(), http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "Unauthorized", errorBody(t, rec))
	}
}

func TestInit_PublicRoutesSkipAuth(t *testing.T) {
	svcs := newTestServices()
	svcs.TokenService = &mockTokenService{
		verifyFn: func(context.Context, string) (models.TokenClaims, error) {
			t.Fatal("public routes must not verify tokens")
			return models.TokenClaims{}, nil
		},
	}

	rec := serve(t, svcs, http.MethodGet, "/api/users", "", authHeader())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_UnknownEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/nonexistent"},
		{"unknown nested blog path", http.MethodGet, "/api/blogs/1/comments"},
		{"wrong method", http.MethodPatch, "/api/users"},
		{"wrong method on blog id", http.MethodGet, "/api/blogs/" + testBlogID},
		{"root without static dir", http.MethodGet, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestServices(), tt.method, tt.path, "", authHeader())

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "unknown endpoint", errorBody(t, rec))
		})
	}
}

func TestInit_StaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>blogs</h1>"), 0o600))

	router := NewHandler(newTestServices(), logger.Nop(), WithStaticDir(dir)).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>blogs</h1>")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown endpoint", errorBody(t, rec))
}

func TestInit_CORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/blogs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	rec := httptest.NewRecorder()
	NewHandler(newTestServices(), logger.Nop()).Init().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_TraceIDHeader(t *testing.T) {
	rec := serve(t, newTestServices(), http.MethodGet, "/api/version", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = serve(t, newTestServices(), http.MethodGet, "/api/version", "", map[string]string{traceIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	svcs := newTestServices()
	svcs.BlogService = &mockBlogService{
		statsFn: func(context.Context) (models.BlogStats, error) {
			panic("nil map")
		},
	}

	rec := serve(t, svcs, http.MethodGet, "/api/blogs/stats", "", authHeader())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
