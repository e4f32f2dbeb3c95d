package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

// DefaultProfiles returns the directory the server starts with.
func DefaultProfiles() []models.Profile {
	return []models.Profile{
		{ID: "1", Name: "John Doe", Email: "john@example.com", CreatedAt: models.MustDate("2023-01-15")},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", CreatedAt: models.MustDate("2023-02-20")},
		{ID: "3", Name: "Bob Johnson", Email: "bob@example.com", CreatedAt: models.MustDate("2023-03-10")},
	}
}

// memoryProfileRepository is an ordered, mutex guarded user directory.
type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles []models.Profile
	logger   *logger.Logger
}

// NewMemoryProfileRepository creates a directory holding a copy of seed.
func NewMemoryProfileRepository(seed []models.Profile, logger *logger.Logger) ProfileRepository {
	logger.Debug().Int("profiles", len(seed)).Msg("creating in-memory profile repository")
	return &memoryProfileRepository{
		profiles: slices.Clone(seed),
		logger:   logger,
	}
}

func (r *memoryProfileRepository) ListProfiles(_ context.Context) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.profiles), nil
}

func (r *memoryProfileRepository) FindProfileByID(_ context.Context, id string) (models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	return r.profiles[i], nil
}

// UpdateProfile applies the non-empty fields of update.
func (r *memoryProfileRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	if update.IsEmpty() {
		return r.profiles[i], nil
	}

	if update.Name != "" {
		r.profiles[i].Name = update.Name
	}
	if update.Email != "" {
		r.profiles[i].Email = update.Email
	}
	logger.FromContext(ctx).Debug().Str("profile_id", id).Msg("profile updated")

	return r.profiles[i], nil
}

// DeleteProfile removes the profile and returns it.
func (r *memoryProfileRepository) DeleteProfile(ctx context.Context, id string) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	deleted := r.profiles[i]
	r.profiles = slices.Delete(r.profiles, i, i+1)
	logger.FromContext(ctx).Debug().Str("profile_id", id).Msg("profile deleted")

	return deleted, nil
}

// indexOf must be called with r.mu held.
func (r *memoryProfileRepository) indexOf(id string) int {
	return slices.IndexFunc(r.profiles, func(p models.Profile) bool {
		return p.ID == id
	})
}
