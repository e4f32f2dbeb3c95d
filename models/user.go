package models

import "time"

// User is a registered account used for authentication.
// PasswordHash must never leave the server.
type User struct {
	// UserID is generated at registration and never changes.
	UserID string `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Name is the display name given at registration.
	Name string `json:"name"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the subset of the user that is safe to put in a response.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.UserID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// PublicUser is the response shape of a [User].
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
