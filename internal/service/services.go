package service

import (
	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Auth and profile services
// are wrapped with request validation.
func NewServices(storages *store.Storages, profileAdapter adapter.ProfileAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger))
	profileService := NewProfileValidationService().Wrap(NewProfileService(storages.ProfileRepository, profileAdapter, logger))

	return &Services{
		AuthService:    authService,
		ProfileService: profileService,
		AppInfoService: appInfoService,
	}, nil
}
