package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

// AuthService owns registration, credential checks and the token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService serves the user directory.
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]models.ProfileView, error)
	GetProfile(ctx context.Context, id string) (models.ProfileDetails, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error)
	DeleteProfile(ctx context.Context, id string) (models.Profile, error)
	Stats(ctx context.Context) (models.ProfileStats, error)
}

type AppInfoService interface {
	Health(ctx context.Context, authenticated bool) models.HealthStatus
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProfileServiceWrapper is the ProfileService counterpart of AuthServiceWrapper.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
