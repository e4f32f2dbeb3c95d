package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by HashPassword for passwords longer than
// MaxPasswordBytes.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// HashPassword derives a bcrypt digest of password with the given cost.
// The salt is generated by bcrypt and embedded in the result.
//
// Example usage:
//
//	digest, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// ComparePassword reports whether password matches the bcrypt digest.
//
// A mismatch is not an error: it returns false, nil. Any other failure,
// such as a malformed digest, is returned as an error.
//
// Passwords longer than MaxPasswordBytes never match: bcrypt would compare
// only their first MaxPasswordBytes bytes.
func ComparePassword(digest, password string) (bool, error) {
	if len(password) > MaxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password: %w", err)
	}
}
