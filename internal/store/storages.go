// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/logger"
)

// ErrUnknownBackend is returned when the configured ledger backend is
// neither "file" nor "sqlite". Config validation normally catches this
// first.
var ErrUnknownBackend = errors.New("unknown ledger backend")

// NewLedgerStore builds the [KVStore] selected by the storage
// configuration. An empty LedgerPath defaults to a file next to the
// executable, mirroring where the log file lives.
func NewLedgerStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (KVStore, error) {
	path := cfg.LedgerPath
	if path == "" {
		execPath, _ := os.Executable()
		name := "transactions.json"
		if cfg.LedgerBackend == "sqlite" {
			name = "transactions.db"
		}
		path = filepath.Join(filepath.Dir(execPath), name)
	}

	switch cfg.LedgerBackend {
	case "file":
		return NewFileKVStore(path), nil
	case "sqlite":
		return NewSQLiteKVStore(ctx, path, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.LedgerBackend)
	}
}
