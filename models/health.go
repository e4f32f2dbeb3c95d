package models

import "time"

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`

	// Authenticated reports whether the request carried a valid token.
	Authenticated bool `json:"authenticated"`
}
