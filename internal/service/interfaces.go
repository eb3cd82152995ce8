// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package service

import (
	"context"
	"time"

	"github.com/Golem-Base/dPaste/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// CreateNoteParams carries everything needed to build a note draft.
type CreateNoteParams struct {
	// Text is the note body. Must be non-empty and within the
	// configured size limit.
	Text string

	// TTL is the requested retention in wall-clock time; it is
	// converted to blocks using the chain's block interval. Zero means
	// the configured default.
	TTL time.Duration

	// Language is the syntax-highlighting tag. Empty means plaintext.
	Language string

	// Password enables encryption when non-empty.
	Password string
}

// NoteService drives the lifecycle of a single note: build a draft,
// submit it, fetch it back, and decrypt it on demand.
type NoteService interface {
	// Create builds a note draft, encrypting the text when a password
	// is given.
	Create(params CreateNoteParams) (models.NoteDraft, error)

	// Submit sends a draft to the chain and records the submission as
	// pending in the ledger under accountID. It returns as soon as the
	// wallet accepts the transaction; confirmation arrives out of band.
	Submit(ctx context.Context, draft models.NoteDraft, accountID string) (txID string, err error)

	// Fetch loads a stored note by id. Absent or expired notes return
	// [ErrNoteNotFound]; an unrecognized stored language is replaced
	// with the default rather than failing.
	Fetch(ctx context.Context, noteID string) (models.Note, error)

	// Decrypt opens an encrypted note with password and returns the
	// decrypted copy. The input note is never modified: on
	// [ErrDecryptionFailed] the caller still holds the encrypted
	// original and may retry with another password.
	Decrypt(note models.Note, password string) (models.Note, error)

	// Extend lengthens a stored note's lifetime by extendBy blocks.
	Extend(ctx context.Context, noteID string, extendBy uint64) (txID string, err error)

	// Delete removes a stored note before its TTL runs out.
	Delete(ctx context.Context, noteID string) (txID string, err error)
}

// NewNoteData is the outcome of resolving a submission: the created
// note's id and its estimated wall-clock expiry.
type NewNoteData struct {
	NoteID         string
	ExpirationDate time.Time
}

// LedgerService is the durable record of in-flight and completed
// submissions per account. Every operation re-reads the full ledger from
// the local store and writes it back wholesale; concurrent processes
// race with last-writer-wins semantics, which is accepted.
type LedgerService interface {
	// MarkPending records a submission the moment the wallet accepts
	// it. Idempotent: repeating the same (account, tx) pair keeps one
	// entry in its original position.
	MarkPending(accountID, txID string) error

	// Resolve turns a mined receipt into the created note's id and
	// expiry and marks the entry complete. An already-complete entry is
	// returned as-is, so concurrent resolvers converge on one result.
	// A receipt without the entity-created log shape fails with
	// [models.ErrMalformedReceipt].
	Resolve(ctx context.Context, accountID, txID string, receipt models.Receipt) (NewNoteData, error)

	// List returns the account's entries in first-seen order.
	List(accountID string) ([]models.TxEntry, error)
}

// ExpiryEstimator converts a block-height expiry into a wall-clock
// estimate.
type ExpiryEstimator interface {
	// EstimateDate projects when targetBlock will be reached, given the
	// current chain height and the configured block interval. A result
	// in the past means "already expired", not an error.
	EstimateDate(ctx context.Context, targetBlock uint64) (time.Time, error)
}
