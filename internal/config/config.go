// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for dPaste.
// It aggregates all sub-configurations and is populated by merging values
// from command-line overrides, environment variables, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: note size limit, default
	// retention, and the encryption feature switch.
	App App `envPrefix:"APP_"`

	// Chain holds the Golem Base node endpoint and chain timing
	// parameters.
	Chain Chain `envPrefix:"CHAIN_"`

	// Storage holds settings for the durable local ledger store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from overrides and environment variables.
	// Populated via the DPASTE_CONFIG environment variable or the
	// --config flag.
	JSONFilePath string `env:"DPASTE_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// MaxNoteSize is the maximum UTF-8 byte length of a note text,
	// checked against the plaintext before any encryption.
	// Env: APP_MAX_NOTE_SIZE
	MaxNoteSize int `env:"MAX_NOTE_SIZE" envDefault:"1024"`

	// DefaultTTL is the retention period used when the caller does not
	// choose one.
	// Env: APP_DEFAULT_TTL
	DefaultTTL time.Duration `env:"DEFAULT_TTL" envDefault:"24h"`

	// EncryptionEnabled switches password encryption on. When false,
	// creating a note with a password is rejected.
	// Env: APP_ENCRYPTION_ENABLED
	EncryptionEnabled bool `env:"ENCRYPTION_ENABLED" envDefault:"true"`
}

// Chain holds the RPC endpoint and timing parameters of the Golem Base
// node the client talks to.
type Chain struct {
	// RPCURL is the HTTP JSON-RPC endpoint of the node.
	// Env: CHAIN_RPC_URL
	RPCURL string `env:"RPC_URL" envDefault:"http://localhost:8545"`

	// ID is the numeric chain id (Golem Base L3 testnet by default).
	// Env: CHAIN_ID
	ID uint64 `env:"ID" envDefault:"600606"`

	// Account is the node-managed account submissions are sent from.
	// Env: CHAIN_ACCOUNT
	Account string `env:"ACCOUNT"`

	// BlockInterval is the average time between blocks, used to convert
	// between TTLs in wall-clock time and TTLs in blocks and to
	// estimate expiry dates.
	// Env: CHAIN_BLOCK_INTERVAL
	BlockInterval time.Duration `env:"BLOCK_INTERVAL" envDefault:"2s"`

	// RequestTimeout bounds every JSON-RPC round trip. A timeout is
	// reported as a retryable transport error, distinct from
	// validation failures.
	// Env: CHAIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Storage holds settings for the durable local key-value store backing the
// transaction ledger.
type Storage struct {
	// LedgerPath is the path of the ledger store: a JSON file for the
	// file backend, a database file for the sqlite backend.
	// Env: STORAGE_LEDGER_PATH
	LedgerPath string `env:"LEDGER_PATH"`

	// LedgerBackend selects the store implementation: "file" or
	// "sqlite".
	// Env: STORAGE_LEDGER_BACKEND
	LedgerBackend string `env:"LEDGER_BACKEND" envDefault:"file"`
}

// GetConfig assembles the final configuration. overrides (typically built
// from command-line flags) take the highest priority, then environment
// variables, then the optional JSON file. A nil overrides is allowed.
func GetConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	b := newConfigBuilder()
	if overrides != nil {
		b = b.withOverrides(overrides)
	}
	return b.withEnv().withJSON().build()
}
