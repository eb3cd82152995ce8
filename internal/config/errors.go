package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidChainConfigs indicates invalid chain settings (for
	// example, missing RPC URL or a non-positive block interval).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive note size limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid ledger store settings
	// (for example, an unknown backend name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
