package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// dummyPassword is hashed once per service and compared against when the
// login email is unknown, so both failure paths cost one bcrypt comparison.
const dummyPassword = "go-user-auth:unknown-user"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor used at registration.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	ids       idGenerator
	now       func() time.Time
	dummyHash func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, cfg, utils.NewUUIDGenerator(), time.Now, logger)
}

func newAuthService(userRepository store.UserRepository, cfg config.App, ids idGenerator, now func() time.Time, logger *logger.Logger) *authService {
	cost := cfg.PasswordHashCost

	return &authService{
		userRepository: userRepository,
		hashCost:       cost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		ids:            ids,
		now:            now,
		dummyHash: sync.OnceValues(func() (string, error) {
			return utils.HashPassword(dummyPassword, cost)
		}),
		logger: logger,
	}
}

// RegisterUser hashes the password and stores a new account with a fresh
// UserID.
//
// Returns the stored user or a wrapped storage error; a taken email is
// reported as store.ErrUserAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashPassword(request.Password, a.hashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrPasswordTooLong)
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        request.Email,
		PasswordHash: passwordHash,
		Name:         request.Name,
		CreatedAt:    a.now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", registeredUser.Email).Str("id", registeredUser.UserID).Msg("new user registered")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
// Other failures are wrapped storage or hashing errors.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.burnComparison(request.Password)
		log.Warn().Str("email", request.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.ComparePassword(foundUser.PasswordHash, request.Password)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		log.Warn().Str("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

func (a *authService) burnComparison(password string) {
	hash, err := a.dummyHash()
	if err != nil {
		return
	}
	_, _ = utils.ComparePassword(hash, password)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT and classifies failures as
// ErrTokenIsExpired, ErrTokenIsMalformed or ErrTokenIsInvalid. The
// underlying jwt error stays in the chain.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err == nil {
		return token, nil
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsMalformed, err)
	default:
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
}
