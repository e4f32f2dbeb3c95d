package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsMalformed    = errors.New("token is malformed")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// TokenFailureReason names the kind of token failure for API consumers:
// "expired", "malformed" or "invalid".
func TokenFailureReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenIsExpired):
		return "expired"
	case errors.Is(err, ErrTokenIsMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
