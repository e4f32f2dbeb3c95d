package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

const (
	recentWindow   = 30 * 24 * time.Hour
	monthKeyLayout = "2006-01"
)

type profileService struct {
	profileRepository store.ProfileRepository

	// profileAdapter enriches single-profile reads. Nil disables enrichment.
	profileAdapter adapter.ProfileAdapter

	now      func() time.Time
	activity func() bool

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, profileAdapter adapter.ProfileAdapter, logger *logger.Logger) ProfileService {
	return newProfileService(profileRepository, profileAdapter, time.Now, randomActivity, logger)
}

func newProfileService(repo store.ProfileRepository, profileAdapter adapter.ProfileAdapter, now func() time.Time, activity func() bool, logger *logger.Logger) *profileService {
	return &profileService{
		profileRepository: repo,
		profileAdapter:    profileAdapter,
		now:               now,
		activity:          activity,
		logger:            logger,
	}
}

// randomActivity simulates an activity flag; the directory has no real
// activity data.
func randomActivity() bool {
	return rand.IntN(2) == 1
}

// ListProfiles returns every profile with its presentation fields and a
// simulated activity flag.
func (s *profileService) ListProfiles(ctx context.Context) ([]models.ProfileView, error) {
	profiles, err := s.profileRepository.ListProfiles(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing profiles failed")
		return nil, fmt.Errorf("listing profiles failed: %w", err)
	}

	now := s.now()
	views := make([]models.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		view := s.view(profile, now)
		active := s.activity()
		view.IsActive = &active
		views = append(views, view)
	}

	return views, nil
}

// GetProfile returns the profile with its presentation fields and the
// external profile document. A failed external fetch is logged and leaves
// ExternalProfile nil.
func (s *profileService) GetProfile(ctx context.Context, id string) (models.ProfileDetails, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profileRepository.FindProfileByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile lookup failed")
		return models.ProfileDetails{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	details := models.ProfileDetails{ProfileView: s.view(profile, s.now())}

	if s.profileAdapter != nil {
		external, err := s.profileAdapter.FetchProfile(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("id", id).Msg("failed to fetch external profile")
		} else {
			details.ExternalProfile = external
		}
	}

	return details, nil
}

// UpdateProfile applies the non-empty fields of update.
func (s *profileService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error) {
	profile, err := s.profileRepository.UpdateProfile(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return profile, nil
}

// DeleteProfile removes the profile and returns it as it was.
func (s *profileService) DeleteProfile(ctx context.Context, id string) (models.Profile, error) {
	profile, err := s.profileRepository.DeleteProfile(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("profile deletion failed")
		return models.Profile{}, fmt.Errorf("profile deletion failed: %w", err)
	}

	return profile, nil
}

// Stats summarizes the directory. Months are keyed "YYYY-MM"; the average
// is over months having at least one profile, rounded to two decimals, and
// zero for an empty directory.
func (s *profileService) Stats(ctx context.Context) (models.ProfileStats, error) {
	profiles, err := s.profileRepository.ListProfiles(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing profiles for stats failed")
		return models.ProfileStats{}, fmt.Errorf("listing profiles for stats failed: %w", err)
	}

	recentSince := s.now().Add(-recentWindow)
	stats := models.ProfileStats{
		TotalUsers:   len(profiles),
		UsersByMonth: make(map[string][]models.Profile),
	}

	for _, profile := range profiles {
		if profile.CreatedAt.After(recentSince) {
			stats.RecentUsers++
		}
		month := profile.CreatedAt.Format(monthKeyLayout)
		stats.UsersByMonth[month] = append(stats.UsersByMonth[month], profile)
	}

	if months := len(stats.UsersByMonth); months > 0 {
		stats.AverageUsersPerMonth = math.Round(float64(stats.TotalUsers)/float64(months)*100) / 100
	}

	return stats, nil
}

func (s *profileService) view(profile models.Profile, now time.Time) models.ProfileView {
	return models.ProfileView{
		Profile:     profile,
		DisplayName: displayName(profile.Name),
		MemberSince: humanize.RelTime(profile.CreatedAt.Time, now, "ago", "from now"),
	}
}

// displayName title-cases every word and keeps existing capitals.
// A Caser is stateful, so one is built per call.
func displayName(name string) string {
	return cases.Title(language.English, cases.NoLower).String(name)
}
