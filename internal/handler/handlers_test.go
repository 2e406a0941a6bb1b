package handler

import (
	"testing"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// http.NewHandler only stores the services pointer, so an empty value is
// enough for construction tests.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: "localhost:3003"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_WithStaticDir(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":3003", StaticDir: t.TempDir()}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":3003"}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
