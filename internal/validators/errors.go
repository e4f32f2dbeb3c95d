package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRegistrationFields = errors.New("email, password and name are required")
	ErrMissingLoginFields        = errors.New("email and password are required")
	ErrMissingToken              = errors.New("token is required")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrPasswordTooLong           = errors.New("password is longer than 72 bytes")
)
