package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// configured through APP_TOKEN_SIGN_KEY, -token-sign-key or the JSON file.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidTokenConfigs indicates an empty issuer or non-positive token duration.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside bcrypt's bounds.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
