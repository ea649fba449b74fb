package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing keys or non-positive token durations.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates an unusable listen address, timeout
	// or rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBootstrapConfigs indicates a bootstrap admin username
	// without a password or vice versa.
	ErrInvalidBootstrapConfigs = errors.New("invalid bootstrap configuration")
)
