package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// ProfileValidationService checks profile updates before they reach the
// wrapped ProfileService. Reads and deletes pass through.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProfileValidationService) ListProfiles(ctx context.Context) ([]models.ProfileView, error) {
	return v.inner.ListProfiles(ctx)
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, id string) (models.ProfileDetails, error) {
	return v.inner.GetProfile(ctx, id)
}

func (v *ProfileValidationService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProfile(ctx, id, update)
}

func (v *ProfileValidationService) DeleteProfile(ctx context.Context, id string) (models.Profile, error) {
	return v.inner.DeleteProfile(ctx, id)
}

func (v *ProfileValidationService) Stats(ctx context.Context) (models.ProfileStats, error) {
	return v.inner.Stats(ctx)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
