// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, password hashing,
// JSON request/response handling, HTTP client initialization, JWT token
// generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated [models.Identity]
// of a request is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the given identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true : an identity was attached by the auth middleware
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(r.Context())
//	if !ok {
//	    // anonymous request
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
