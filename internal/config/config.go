// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// agil-auth server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds security and token settings, hashing parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the credential store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, routing and timeout settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the outbound HTTP client used by authctl.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control password
// hashing, token lifecycle, and versioning.
type App struct {
	// PasswordHashKey is an optional pepper. When set, passwords are
	// HMAC-SHA256'd with it before the salted Argon2id derivation.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the secret used to sign and verify session tokens.
	// Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Argon holds the Argon2id cost parameters.
	Argon Argon `envPrefix:"ARGON_"`

	// Version is the semantic version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SeedTestUser registers the well-known test account on startup.
	// Env: APP_SEED_TEST_USER
	SeedTestUser bool `env:"SEED_TEST_USER"`
}

// Argon holds Argon2id tuning parameters.
type Argon struct {
	// Time is the number of passes over memory.
	// Env: APP_ARGON_TIME
	Time uint32 `env:"TIME"`

	// Memory is the memory cost in KiB.
	// Env: APP_ARGON_MEMORY
	Memory uint32 `env:"MEMORY"`

	// Threads is the degree of parallelism.
	// Env: APP_ARGON_THREADS
	Threads uint8 `env:"THREADS"`
}

// Storage groups the configuration of the credential store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Timeout bounds every individual store call.
	// Env: STORAGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// DB holds connection settings for the credential store backend.
type DB struct {
	// DSN selects and configures the backend by its scheme:
	// postgres://, sqlite://, mongodb:// or memory://.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the database name used by document-store backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// BasePath is the prefix under which /register, /login and /session
	// are mounted (e.g. "/api").
	// Env: SERVER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists the allowed CORS origins.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Adapter holds configuration for the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the base address of the agil-auth server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is the period of the store health probe.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still zero afterwards.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
