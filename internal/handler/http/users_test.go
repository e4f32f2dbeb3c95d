package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

var john = models.Profile{ID: "1", Name: "John Doe", Email: "john@example.com", CreatedAt: models.MustDate("2023-01-15")}

func TestListUsers(t *testing.T) {
	active := true
	profiles := &mockProfileService{
		listFn: func(context.Context) ([]models.ProfileView, error) {
			return []models.ProfileView{{Profile: john, DisplayName: "John Doe", MemberSince: "3 years ago", IsActive: &active}}, nil
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodGet, "/api/users", nil, bearer(validToken)...)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["total"])
	assert.NotEmpty(t, body["timestamp"])

	users := body["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, map[string]any{
		"id":          "1",
		"name":        "John Doe",
		"email":       "john@example.com",
		"createdAt":   "2023-01-15",
		"displayName": "John Doe",
		"memberSince": "3 years ago",
		"isActive":    true,
	}, users[0])
}

func TestGetUser(t *testing.T) {
	profiles := &mockProfileService{
		getFn: func(_ context.Context, id string) (models.ProfileDetails, error) {
			require.Equal(t, "1", id)
			return models.ProfileDetails{
				ProfileView:     models.ProfileView{Profile: john, DisplayName: "John Doe", MemberSince: "3 years ago"},
				ExternalProfile: json.RawMessage(`{"username":"Bret"}`),
			}, nil
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodGet, "/api/users/1", nil, bearer(validToken)...)

	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "John Doe", user["displayName"])
	assert.Equal(t, map[string]any{"username": "Bret"}, user["externalProfile"])
	assert.NotContains(t, user, "isActive")
}

func TestGetUser_ExternalProfileNull(t *testing.T) {
	profiles := &mockProfileService{
		getFn: func(context.Context, string) (models.ProfileDetails, error) {
			return models.ProfileDetails{ProfileView: models.ProfileView{Profile: john}}, nil
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodGet, "/api/users/1", nil, bearer(validToken)...)

	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["user"].(map[string]any)
	assert.Contains(t, user, "externalProfile")
	assert.Nil(t, user["externalProfile"])
}

func TestUserRoutes_NotFound(t *testing.T) {
	notFound := fmt.Errorf("profile lookup failed: %w", store.ErrProfileNotFound)
	profiles := &mockProfileService{
		getFn: func(context.Context, string) (models.ProfileDetails, error) { return models.ProfileDetails{}, notFound },
		updateFn: func(context.Context, string, models.ProfileUpdate) (models.Profile, error) {
			return models.Profile{}, notFound
		},
		deleteFn: func(context.Context, string) (models.Profile, error) { return models.Profile{}, notFound },
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := serve(t, h, method, "/api/users/404", models.ProfileUpdate{Name: "x"}, bearer(validToken)...)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, map[string]any{"error": "User not found"}, decodeBody(t, rec))
		})
	}
}

func TestUpdateUser(t *testing.T) {
	profiles := &mockProfileService{
		updateFn: func(_ context.Context, id string, update models.ProfileUpdate) (models.Profile, error) {
			assert.Equal(t, "1", id)
			assert.Equal(t, models.ProfileUpdate{Name: "Johnny"}, update)
			updated := john
			updated.Name = update.Name
			return updated, nil
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodPut, "/api/users/1", `{"name":"Johnny"}`, bearer(validToken)...)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User updated successfully", body["message"])
	assert.Equal(t, "Johnny", body["user"].(map[string]any)["name"])
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	profiles := &mockProfileService{
		updateFn: func(context.Context, string, models.ProfileUpdate) (models.Profile, error) {
			return models.Profile{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail)
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodPut, "/api/users/1", `{"email":"nope"}`, bearer(validToken)...)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email", decodeBody(t, rec)["error"])
}

func TestDeleteUser(t *testing.T) {
	profiles := &mockProfileService{
		deleteFn: func(_ context.Context, id string) (models.Profile, error) {
			assert.Equal(t, "1", id)
			return john, nil
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodDelete, "/api/users/1", nil, bearer(validToken)...)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User deleted successfully", body["message"])
	assert.Equal(t, "1", body["deletedUser"].(map[string]any)["id"])
}

func TestUserStats(t *testing.T) {
	profiles := &mockProfileService{
		statsFn: func(context.Context) (models.ProfileStats, error) {
			return models.ProfileStats{
				TotalUsers:           1,
				UsersByMonth:         map[string][]models.Profile{"2023-01": {john}},
				AverageUsersPerMonth: 1,
			}, nil
		},
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodGet, "/api/users/stats/summary", nil, bearer(validToken)...)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["totalUsers"])
	assert.EqualValues(t, 0, body["recentUsers"])
	assert.EqualValues(t, 1, body["averageUsersPerMonth"])
	assert.Len(t, body["usersByMonth"].(map[string]any)["2023-01"], 1)
}

func TestListUsers_UnexpectedError(t *testing.T) {
	profiles := &mockProfileService{
		listFn: func(context.Context) ([]models.ProfileView, error) { return nil, errors.New("secret detail") },
	}
	h := newTestHandler(t, acceptingAuth(), profiles)

	rec := serve(t, h, http.MethodGet, "/api/users", nil, bearer(validToken)...)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "Internal Server Error"}, decodeBody(t, rec))
}
