// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// the password pepper and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Relay holds settings of the change relay and the real-time hub.
	Relay Relay `envPrefix:"RELAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, logging and versioning.
type App struct {
	// PasswordHashKey is the pepper mixed into every password (HMAC-SHA256)
	// before it is hashed with bcrypt. Must be kept confidential.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimal zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the optional TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single REST
	// request. Zero disables the timeout. Real-time connections are exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the connection string. Its scheme selects the backend:
	// "postgres://" or "postgresql://" for PostgreSQL, "mongodb://" or
	// "mongodb+srv://" for MongoDB.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by PostgreSQL.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Relay holds settings of the change relay worker and the real-time hub.
type Relay struct {
	// RetryBaseDelay is the first backoff delay used when the change feed
	// subscription fails and has to be re-established.
	// Env: RELAY_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// RetryMaxDelay caps the exponential backoff delay.
	// Env: RELAY_RETRY_MAX_DELAY
	RetryMaxDelay time.Duration `env:"RETRY_MAX_DELAY"`

	// MaxRetries limits consecutive resubscription attempts. Zero means
	// retry until the process stops.
	// Env: RELAY_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`

	// ClientBuffer is the number of pending messages buffered per real-time
	// client. Messages beyond it are dropped for that client.
	// Env: RELAY_CLIENT_BUFFER
	ClientBuffer int `env:"CLIENT_BUFFER"`

	// OwnerScoped restricts delivery of change events to authenticated
	// real-time clients owning the changed note. Disabled by default, in
	// which case every client receives every event.
	// Env: RELAY_OWNER_SCOPED
	OwnerScoped bool `env:"OWNER_SCOPED"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults (fill the remaining zero fields only)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
