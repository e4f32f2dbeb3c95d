package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Unset fields fail the
// call with errUnexpectedCall.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

var errUnexpectedCall = errors.New("unexpected call")

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{}, errUnexpectedCall
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, errUnexpectedCall
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockProfileService struct {
	listFn   func(ctx context.Context) ([]models.ProfileView, error)
	getFn    func(ctx context.Context, id string) (models.ProfileDetails, error)
	updateFn func(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error)
	deleteFn func(ctx context.Context, id string) (models.Profile, error)
	statsFn  func(ctx context.Context) (models.ProfileStats, error)
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]models.ProfileView, error) {
	if m.listFn == nil {
		return nil, errUnexpectedCall
	}
	return m.listFn(ctx)
}

func (m *mockProfileService) GetProfile(ctx context.Context, id string) (models.ProfileDetails, error) {
	if m.getFn == nil {
		return models.ProfileDetails{}, errUnexpectedCall
	}
	return m.getFn(ctx, id)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error) {
	if m.updateFn == nil {
		return models.Profile{}, errUnexpectedCall
	}
	return m.updateFn(ctx, id, update)
}

func (m *mockProfileService) DeleteProfile(ctx context.Context, id string) (models.Profile, error) {
	if m.deleteFn == nil {
		return models.Profile{}, errUnexpectedCall
	}
	return m.deleteFn(ctx, id)
}

func (m *mockProfileService) Stats(ctx context.Context) (models.ProfileStats, error) {
	if m.statsFn == nil {
		return models.ProfileStats{}, errUnexpectedCall
	}
	return m.statsFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) Health(_ context.Context, authenticated bool) models.HealthStatus {
	return models.HealthStatus{
		Status:        "OK",
		Timestamp:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Uptime:        1.5,
		Environment:   "test",
		Version:       m.version,
		Authenticated: authenticated,
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	validToken = "valid.jwt.token"
	aliceID    = "0190f5d2-7a3b-7c4d-8e9f-0a1b2c3d4e5f"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Environment: "test", Version: "test"},
		Server: config.Server{
			HTTPAddress:    ":0",
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: 5 * time.Second,
			MaxBodyBytes:   1 << 10,
		},
	}
}

// acceptingAuth accepts validToken only.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token != validToken {
				return models.Token{}, service.ErrTokenIsInvalid
			}
			return models.Token{Claims: &models.Claims{UserID: aliceID, Email: "alice@example.com"}}, nil
		},
	}
}

func newTestHandler(t *testing.T, auth service.AuthService, profiles service.ProfileService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		ProfileService: profiles,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// serve runs a request through the full router.
func serve(t *testing.T, h *Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}
