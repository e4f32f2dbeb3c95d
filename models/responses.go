package models

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`

	// Reason classifies a token verification failure:
	// "expired", "invalid" or "malformed".
	Reason string `json:"reason,omitempty"`
}

type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

type VerifyResponse struct {
	Valid bool     `json:"valid"`
	User  Identity `json:"user"`
}

// ProfileListResponse is the body of GET /api/users.
type ProfileListResponse struct {
	Users     []ProfileView `json:"users"`
	Total     int           `json:"total"`
	Timestamp time.Time     `json:"timestamp"`
}

type ProfileResponse struct {
	User ProfileDetails `json:"user"`
}

type ProfileUpdatedResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

type ProfileDeletedResponse struct {
	Message     string  `json:"message"`
	DeletedUser Profile `json:"deletedUser"`
}
