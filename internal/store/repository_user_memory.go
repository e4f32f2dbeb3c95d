package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

// memoryUserRepository keeps credentials in process memory, keyed by email.
// Contents are lost on restart.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	logger *logger.Logger
}

func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make(map[string]models.User),
		logger: logger,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		logger.FromContext(ctx).Debug().Str("func", "*memoryUserRepository.CreateUser").Msg("email already registered")
		return models.User{}, ErrUserAlreadyExists
	}
	r.users[user.Email] = user

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
