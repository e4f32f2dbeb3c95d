package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// DB is a SQL connection bound to one dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	retryDelays        []time.Duration
}

// NewConnectDB opens the database selected by the DSN scheme:
// "postgres://" and "postgresql://" use PostgreSQL through pgx,
// "sqlite://<path>" and "file:<path>" use SQLite.
func NewConnectDB(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == driverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
		retryDelays:        defaultRetryDelays,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withRetry runs fn again after each delay while the failure is classified
// as retryable.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	for _, delay := range db.retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		err = fn()
	}

	return err
}

// redactDSN hides everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if scheme, _, found := strings.Cut(dsn, "://"); found {
		return scheme + "://***"
	}
	if len(dsn) > 8 {
		return dsn[:8] + "***"
	}
	return dsn
}
