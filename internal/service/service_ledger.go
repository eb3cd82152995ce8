// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/internal/store"
	"github.com/Golem-Base/dPaste/models"
)

// ledgerKey is the single durable-store key the whole ledger blob lives
// under, shared with the web client.
const ledgerKey = "transactions"

// expirationDateLayout matches the ISO-8601 form the web client writes
// (millisecond precision, UTC "Z" suffix).
const expirationDateLayout = "2006-01-02T15:04:05.000Z07:00"

type ledgerService struct {
	kv        store.KVStore
	estimator ExpiryEstimator
	logger    *logger.Logger

	// mu guards the read-modify-write cycle within this process.
	// Cross-process writers (another CLI run, the web client) still
	// race with last-writer-wins; that is a documented limitation of
	// the shared local store, not something to fix here.
	mu sync.Mutex
}

// NewLedgerService builds the transaction ledger over the durable local
// store.
func NewLedgerService(kv store.KVStore, estimator ExpiryEstimator, log *logger.Logger) LedgerService {
	return &ledgerService{kv: kv, estimator: estimator, logger: log}
}

// MarkPending implements [LedgerService].
func (s *ledgerService) MarkPending(accountID, txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return err
	}
	ledger.Account(accountID).Set(txID, models.PendingTx())
	return s.persist(ledger)
}

// Resolve implements [LedgerService].
func (s *ledgerService) Resolve(ctx context.Context, accountID, txID string, receipt models.Receipt) (NewNoteData, error) {
	noteID, expiresAtBlock, err := receipt.CreatedEntity()
	if err != nil {
		return NewNoteData{}, err
	}

	expiration, err := s.estimator.EstimateDate(ctx, expiresAtBlock)
	if err != nil {
		return NewNoteData{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return NewNoteData{}, err
	}

	user := ledger.Account(accountID)
	if existing, ok := user.Get(txID); ok && existing.Type == models.TxComplete {
		// already resolved by another caller; keep the first write
		date, parseErr := time.Parse(expirationDateLayout, existing.ExpirationDate)
		if parseErr != nil {
			date = expiration
		}
		return NewNoteData{NoteID: existing.NoteID, ExpirationDate: date}, nil
	}

	serialized := expiration.UTC().Format(expirationDateLayout)
	user.Set(txID, models.CompleteTx(noteID, serialized))
	if err := s.persist(ledger); err != nil {
		return NewNoteData{}, err
	}

	s.logger.Info().Str("tx", txID).Str("note", noteID).Msg("submission resolved")
	return NewNoteData{NoteID: noteID, ExpirationDate: expiration}, nil
}

// List implements [LedgerService].
func (s *ledgerService) List(accountID string) ([]models.TxEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return nil, err
	}
	user, ok := ledger.Lookup(accountID)
	if !ok {
		return nil, nil
	}
	return user.Entries(), nil
}

// load re-reads the whole ledger blob; the in-memory value never outlives
// one operation, so a reload or a write from another process is always
// picked up.
func (s *ledgerService) load() (*models.TransactionList, error) {
	ledger := &models.TransactionList{}

	raw, ok, err := s.kv.Get(ledgerKey)
	if err != nil {
		return nil, fmt.Errorf("load transaction ledger: %w", err)
	}
	if !ok {
		return ledger, nil
	}
	if err := json.Unmarshal([]byte(raw), ledger); err != nil {
		return nil, fmt.Errorf("decode transaction ledger: %w", err)
	}
	return ledger, nil
}

func (s *ledgerService) persist(ledger *models.TransactionList) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode transaction ledger: %w", err)
	}
	if err := s.kv.Set(ledgerKey, string(raw)); err != nil {
		return fmt.Errorf("persist transaction ledger: %w", err)
	}
	return nil
}
