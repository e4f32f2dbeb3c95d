package adapter

import "errors"

var (
	// ErrProfileNotFound means the external API has no profile for the id.
	ErrProfileNotFound = errors.New("external profile not found")
	// ErrUpstreamRejected covers 4xx answers other than 404.
	ErrUpstreamRejected = errors.New("external profile request rejected")
	// ErrUpstreamUnavailable covers 5xx answers.
	ErrUpstreamUnavailable = errors.New("external profile service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status from external profile service")

	ErrInvalidResponse = errors.New("invalid response body")
)
