package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectDB_UnsupportedDSN(t *testing.T) {
	_, err := NewConnectDB(context.Background(), "mysql://root:pw@localhost/db", logger.Nop())

	require.ErrorIs(t, err, ErrUnsupportedDSN)
	assert.NotContains(t, err.Error(), "pw", "credentials must not leak into errors")
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://***", redactDSN("postgres://u:p@h/db"))
	assert.Equal(t, "users.db", redactDSN("users.db"))
	assert.Equal(t, "host=loc***", redactDSN("host=localhost password=x"))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.NotNullViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}

func TestWithRetry_StopsOnContextCancel(t *testing.T) {
	db := newDB(nil, driverPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.retryDelays = []time.Duration{time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestNewStorages_InMemory(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	assert.IsType(t, &memoryUserRepository{}, storages.UserRepository)
	profiles, err := storages.ProfileRepository.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 3)
	assert.NoError(t, storages.Close())
}

func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "users.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.UserRepository
	assert.IsType(t, &userRepository{}, repo)

	user := testUser()
	_, err = repo.CreateUser(ctx, user)
	require.NoError(t, err)

	duplicate := user
	duplicate.UserID = "other"
	_, err = repo.CreateUser(ctx, duplicate)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(found.CreatedAt), "created_at round trip: %v != %v", user.CreatedAt, found.CreatedAt)

	_, err = repo.FindUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestNewDB_PlaceholderPerDriver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantSQL string
	}{
		{name: "postgres", driver: driverPostgres, wantSQL: "SELECT id FROM users WHERE email = $1"},
		{name: "sqlite", driver: driverSQLite, wantSQL: "SELECT id FROM users WHERE email = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.driver, NewPostgresErrorClassifier(), logger.Nop())

			query, args, err := db.builder.Select("id").From("users").Where("email = ?", "a@b.c").ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, []any{"a@b.c"}, args)
		})
	}
}
