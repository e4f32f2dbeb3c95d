package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: ":3000"}}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := &config.StructuredConfig{}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_RouterIsUsable(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
