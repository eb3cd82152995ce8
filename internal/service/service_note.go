// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Golem-Base/dPaste/internal/adapter"
	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/crypto"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/models"
)

type noteService struct {
	cfg     config.App
	chain   config.Chain
	box     crypto.Box
	storage adapter.StorageAdapter
	wallet  adapter.WalletAdapter
	ledger  LedgerService
	logger  *logger.Logger
}

// NewNoteService wires the note lifecycle out of its collaborators.
func NewNoteService(
	appCfg config.App,
	chainCfg config.Chain,
	box crypto.Box,
	storage adapter.StorageAdapter,
	wallet adapter.WalletAdapter,
	ledger LedgerService,
	log *logger.Logger,
) NoteService {
	return &noteService{
		cfg:     appCfg,
		chain:   chainCfg,
		box:     box,
		storage: storage,
		wallet:  wallet,
		ledger:  ledger,
		logger:  log,
	}
}

// Create implements [NoteService]. The size limit applies to the plaintext
// so an attacker cannot learn anything from a ciphertext-vs-plaintext
// limit difference, and so the check costs nothing before the slow key
// derivation.
func (s *noteService) Create(params CreateNoteParams) (models.NoteDraft, error) {
	if params.Text == "" {
		return models.NoteDraft{}, ErrEmptyNote
	}
	if len(params.Text) > s.cfg.MaxNoteSize {
		return models.NoteDraft{}, fmt.Errorf("%w: %d bytes, limit %d", ErrNoteTooLarge, len(params.Text), s.cfg.MaxNoteSize)
	}

	encrypted := params.Password != ""
	if encrypted && !s.cfg.EncryptionEnabled {
		return models.NoteDraft{}, ErrEncryptionDisabled
	}

	language := params.Language
	if language == "" {
		language = models.DefaultLanguage
	}

	ttl := params.TTL
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}
	ttlBlocks := uint64(ttl / s.chain.BlockInterval)
	if ttlBlocks == 0 {
		ttlBlocks = 1
	}

	var payload models.Payload
	if encrypted {
		data, err := s.box.Encrypt([]byte(params.Text), params.Password)
		if err != nil {
			return models.NoteDraft{}, fmt.Errorf("encrypt note: %w", err)
		}
		payload = models.EncryptedPayload{Data: data}
	} else {
		payload = models.PlaintextPayload{Text: params.Text}
	}

	return models.NoteDraft{
		Payload:  payload,
		Metadata: models.NewAnnotationDraft(language, ttlBlocks, encrypted),
	}, nil
}

// Submit implements [NoteService]. The pending ledger entry is written
// right after the wallet accepts the transaction, before any
// confirmation, so a page reload or crash between the two still finds
// the submission on the next listing.
func (s *noteService) Submit(ctx context.Context, draft models.NoteDraft, accountID string) (string, error) {
	submission, err := draft.StorageSubmission()
	if err != nil {
		return "", err
	}

	txID, err := s.wallet.SubmitCreate(ctx, submission)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("tx", txID).Msg("note submitted")

	if err := s.ledger.MarkPending(accountID, txID); err != nil {
		// the chain write already happened; surface the bookkeeping
		// failure without inventing a rollback
		return txID, fmt.Errorf("record pending submission: %w", err)
	}
	return txID, nil
}

// Fetch implements [NoteService].
func (s *noteService) Fetch(ctx context.Context, noteID string) (models.Note, error) {
	meta, err := s.storage.GetEntityMetaData(ctx, noteID)
	if err != nil {
		if errors.Is(err, adapter.ErrEntityNotFound) {
			return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
		}
		return models.Note{}, err
	}

	record, err := models.ParseAnnotations(meta.StringAnnotations, meta.NumericAnnotations, meta.ExpiresAtBlock)
	if err != nil {
		return models.Note{}, err
	}

	if !models.KnownLanguage(record.Language) {
		s.logger.Debug().Str("language", record.Language).Msg("unknown language, falling back")
		record.Language = models.DefaultLanguage
	}

	data, err := s.storage.GetStorageValue(ctx, noteID)
	if err != nil {
		if errors.Is(err, adapter.ErrEntityNotFound) {
			return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
		}
		return models.Note{}, err
	}

	// classification follows the annotation flag, never the payload bytes
	var payload models.Payload
	if record.Encrypted {
		payload = models.EncryptedPayload{Data: data}
	} else {
		payload = models.PlaintextPayload{Text: string(data)}
	}

	return models.Note{Payload: payload, Metadata: record}, nil
}

// Decrypt implements [NoteService].
func (s *noteService) Decrypt(note models.Note, password string) (models.Note, error) {
	encPayload, ok := note.Payload.(models.EncryptedPayload)
	if !ok {
		return models.Note{}, ErrNotEncrypted
	}

	plaintext, err := s.box.Decrypt(encPayload.Data, password)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return note.Decrypted(string(plaintext)), nil
}

// Extend implements [NoteService].
func (s *noteService) Extend(ctx context.Context, noteID string, extendBy uint64) (string, error) {
	return s.wallet.SubmitExtend(ctx, noteID, extendBy)
}

// Delete implements [NoteService].
func (s *noteService) Delete(ctx context.Context, noteID string) (string, error) {
	return s.wallet.SubmitDelete(ctx, noteID)
}
