package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing operator credentials
	// (username or password not configured by any source).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidTokenConfigs indicates invalid JWT settings
	// (missing sign key or issuer, or a non-positive token duration).
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
