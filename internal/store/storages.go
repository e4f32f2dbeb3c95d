package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

// Storages groups the repositories used by the services.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository

	db *DB
}

// NewStorages builds the repositories. Credentials live in memory unless
// cfg.DB.DSN names a database, in which case the schema is migrated first.
// The user directory is always in memory, seeded with [DefaultProfiles].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		ProfileRepository: NewMemoryProfileRepository(DefaultProfiles(), log),
	}

	if cfg.DB.DSN == "" {
		log.Info().Msg("using in-memory credential store")
		storages.UserRepository = NewMemoryUserRepository(log)
		return storages, nil
	}

	db, err := NewConnectDB(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting credential store: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating credential store: %w", err)
	}

	log.Info().Str("driver", db.driver).Msg("using SQL credential store")
	storages.UserRepository = NewUserRepository(db, log)
	storages.db = db

	return storages, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
