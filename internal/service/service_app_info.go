package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

const healthStatusOK = "OK"

type appInfoService struct {
	appVersion  string
	environment string

	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version. Uptime is measured from this call.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		startedAt:   time.Now(),
		now:         time.Now,
		logger:      logger,
	}, nil
}

// Health reports liveness, uptime in seconds and the runtime environment.
func (s *appInfoService) Health(ctx context.Context, authenticated bool) models.HealthStatus {
	now := s.now()

	return models.HealthStatus{
		Status:        healthStatusOK,
		Timestamp:     now.UTC(),
		Uptime:        now.Sub(s.startedAt).Seconds(),
		Environment:   s.environment,
		Version:       s.appVersion,
		Authenticated: authenticated,
	}
}
