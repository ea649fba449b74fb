// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-ask-box server. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the document store DSN and the optional profile cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and rate limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the mail relay settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Bootstrap holds the credentials of the first super admin.
	Bootstrap Bootstrap `envPrefix:"BOOTSTRAP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the profile listing cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// App holds application-level configuration values that control security,
// token lifecycle and versioning.
type App struct {
	// PasswordHashKey is the pepper mixed into every password before bcrypt.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies every issued credential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a login credential stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// EmailTokenDuration specifies how long an e-mail confirmation token
	// stays valid.
	// Env: APP_EMAIL_TOKEN_DURATION
	EmailTokenDuration time.Duration `env:"EMAIL_TOKEN_DURATION"`

	// HashKey is the HMAC key used to digest e-mail confirmation tokens
	// before they are stored.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and throttling settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress in "host:port" format. The gRPC health server is not
	// started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP on login, registration and ask routes. Zero disables it.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size of the per-IP limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`

	// TrustProxyHeaders makes the limiter key clients by X-Forwarded-For or
	// X-Real-IP. Enable only behind a reverse proxy that overwrites them.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// DB holds connection settings for the document store. The scheme selects
// the driver: postgres://, sqlite:// (or file:) and mongodb://.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the profile listing cache settings.
type Cache struct {
	// RedisURL enables the Redis cache when set
	// (e.g. "redis://localhost:6379/0").
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// TTL bounds the lifetime of a cached listing.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Adapter holds configuration of the outbound mail relay.
type Adapter struct {
	// HTTPAddress is the base URL of the mail relay. Confirmation mails are
	// only logged when empty.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single relay call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bootstrap describes the super admin created on an empty admin directory.
type Bootstrap struct {
	// Env: BOOTSTRAP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`
	// Env: BOOTSTRAP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`
	// Env: BOOTSTRAP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
