// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Chain.RPCURL == "" || cfg.Chain.BlockInterval <= 0 || cfg.Chain.RequestTimeout <= 0 {
		return ErrInvalidChainConfigs
	}

	if cfg.App.MaxNoteSize <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.LedgerBackend != "file" && cfg.Storage.LedgerBackend != "sqlite" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
