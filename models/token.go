package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued at login.
//
// UserID and Email are carried as private claims; the registered claims
// hold the subject, issuer and the issue/expiry instants.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Identity returns the principal described by the claims.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID: c.UserID,
		Email:  c.Email,
	}
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent to the client.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the typed payload of the token.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity returns the principal the token was issued for.
func (t *Token) Identity() Identity {
	if t.Claims == nil {
		return Identity{}
	}

	return t.Claims.Identity()
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
