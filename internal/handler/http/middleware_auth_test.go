package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// executeAuth runs mw in front of a handler that records the identity it saw.
func executeAuth(h *Handler, mw func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, *models.Identity, bool) {
	var (
		seen   *models.Identity
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if identity, ok := utils.IdentityFromContext(r.Context()); ok {
			seen = &identity
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	return rec, seen, called
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
		wantNext   bool
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantError: "Access token required"},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized, wantError: "Access token required"},
		{name: "empty token", header: "Bearer   ", wantStatus: http.StatusUnauthorized, wantError: "Access token required"},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantError: "Access token required"},
		{name: "forged token", header: "Bearer forged", wantStatus: http.StatusForbidden, wantError: "Invalid or expired token"},
		{name: "valid token", header: "Bearer " + validToken, wantStatus: http.StatusOK, wantNext: true},
		{name: "lowercase scheme", header: "bearer " + validToken, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, acceptingAuth(), nil)

			rec, identity, called := executeAuth(h, h.auth, tt.header)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantNext {
				require.NotNil(t, identity)
				assert.Equal(t, models.Identity{UserID: aliceID, Email: "alice@example.com"}, *identity)
				return
			}
			assert.Equal(t, map[string]any{"error": tt.wantError}, decodeBody(t, rec))
		})
	}
}

func TestAuth_ExpiredTokenIsForbidden(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newTestHandler(t, auth, nil)

	rec, _, called := executeAuth(h, h.auth, "Bearer old")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuth_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(t, acceptingAuth(), nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer forged")
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"message":"invalid token provided"`)
	assert.Contains(t, buf.String(), `"path":"/api/users"`)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(t, acceptingAuth(), nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			header := "Bearer " + validToken
			want := http.StatusOK
			if i%2 == 1 {
				header, want = "Bearer forged", http.StatusForbidden
			}
			rec, _, _ := executeAuth(h, h.auth, header)
			assert.Equal(t, want, rec.Code)
		}(i)
	}
	wg.Wait()
}

// ─────────────────────────────────────────────
// optionalAuth
// ─────────────────────────────────────────────

func TestOptionalAuth_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantIdentity bool
	}{
		{name: "no header", header: ""},
		{name: "forged token", header: "Bearer forged"},
		{name: "garbage header", header: "nonsense"},
		{name: "valid token", header: "Bearer " + validToken, wantIdentity: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, acceptingAuth(), nil)

			rec, identity, called := executeAuth(h, h.optionalAuth, tt.header)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, called, "optional auth never halts")
			assert.Equal(t, tt.wantIdentity, identity != nil)
		})
	}
}
