package models

// Identity is the authenticated principal of a request.
// It is derived only from a verified token and never persisted.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
