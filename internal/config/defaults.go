package config

import "time"

// Fallback values applied before any other source. The token sign key is
// deliberately absent.
const (
	DefaultHTTPAddress      = ":3000"
	DefaultAllowedOrigin    = "http://localhost:3000"
	DefaultTokenIssuer      = "go-user-auth"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 12
	DefaultEnvironment      = "development"
	DefaultLogLevel         = "debug"
	DefaultVersion          = "0.1.0"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultMaxBodyBytes     = 10 << 20

	DefaultProfileBaseURL        = "https://jsonplaceholder.typicode.com"
	DefaultProfileRequestTimeout = 5 * time.Second
	DefaultProfileUserAgent      = "go-user-auth/1.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Environment:      DefaultEnvironment,
			LogLevel:         DefaultLogLevel,
			Version:          DefaultVersion,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			AllowedOrigins:  []string{DefaultAllowedOrigin},
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		Adapter: Adapter{
			ProfileBaseURL: DefaultProfileBaseURL,
			RequestTimeout: DefaultProfileRequestTimeout,
			UserAgent:      DefaultProfileUserAgent,
		},
	}
}
