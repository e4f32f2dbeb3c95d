// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-auth server. It is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and runtime environment settings.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener, CORS and request limits.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects the credential store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures the outbound client used to enrich user profiles.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds security and runtime settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// There is no default: the server refuses to start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Environment is reported by the health endpoint (e.g. "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form; host may be empty.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AllowedOrigins is the CORS allow-list, comma separated in env.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxBodyBytes caps the size of request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the connection string of the credential store.
type DB struct {
	// DSN selects the backend: empty keeps credentials in memory,
	// "postgres://" / "postgresql://" uses PostgreSQL and "sqlite://<path>"
	// or "file:<path>" uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter configures the external profile client.
type Adapter struct {
	// ProfileBaseURL is the base URL of the external profile API.
	// Env: ADAPTER_PROFILE_BASE_URL
	ProfileBaseURL string `env:"PROFILE_BASE_URL"`

	// RequestTimeout bounds each outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every outbound request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Disabled turns profile enrichment off. An empty ProfileBaseURL cannot
	// do this because empty values never override the default.
	// Env: ADAPTER_DISABLED
	Disabled bool `env:"DISABLED"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources. Later sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
