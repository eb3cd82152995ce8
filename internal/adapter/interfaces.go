// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package adapter

import (
	"context"

	"github.com/Golem-Base/dPaste/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chain_adapter_mock.go -package=mock

// StorageAdapter is the read side of the storage collaborator: it fetches
// an entity's payload and annotations and reports chain height. All calls
// are single round trips with no retry policy; retries, if any, belong to
// the caller.
type StorageAdapter interface {
	// GetEntityMetaData returns the annotations and expiry of a stored
	// entity. Absent or expired entities return [ErrEntityNotFound] —
	// a normal state for TTL'd notes, not a fault.
	GetEntityMetaData(ctx context.Context, entityID string) (models.EntityMetaData, error)

	// GetStorageValue returns the raw payload bytes of a stored entity.
	GetStorageValue(ctx context.Context, entityID string) ([]byte, error)

	// CurrentBlockNumber returns the current chain height.
	CurrentBlockNumber(ctx context.Context) (uint64, error)
}

// WalletAdapter is the write side: it submits entity operations through
// the node-managed account and reports their receipts. Submit returns as
// soon as the transaction is accepted into the pool; confirmation arrives
// out of band via GetReceipt.
type WalletAdapter interface {
	// SubmitCreate submits an entity creation and returns its
	// transaction id.
	SubmitCreate(ctx context.Context, submission models.StorageSubmission) (txID string, err error)

	// SubmitExtend extends an entity's lifetime by extendBy blocks.
	SubmitExtend(ctx context.Context, entityID string, extendBy uint64) (txID string, err error)

	// SubmitDelete removes an entity before its TTL runs out.
	SubmitDelete(ctx context.Context, entityID string) (txID string, err error)

	// GetReceipt returns the mined receipt for txID. ok is false while
	// the transaction is still pending.
	GetReceipt(ctx context.Context, txID string) (receipt models.Receipt, ok bool, err error)
}
