package store

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered credentials.
type UserRepository interface {
	// CreateUser inserts user unless its email is already taken, in which
	// case it returns ErrUserAlreadyExists. The check and the insert are atomic.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns ErrNoUserWasFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProfileRepository holds the user directory.
type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	FindProfileByID(ctx context.Context, id string) (models.Profile, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error)
	DeleteProfile(ctx context.Context, id string) (models.Profile, error)
}

// ErrorClassificator maps driver-specific errors to store semantics.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
