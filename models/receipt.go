// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedReceipt is returned when a transaction receipt does not
// carry the single entity-created log this application expects. It means
// the submission did not create exactly one note.
var ErrMalformedReceipt = errors.New("receipt did not create a note")

// Receipt is the subset of an eth_getTransactionReceipt result the ledger
// needs to recover the created note.
type Receipt struct {
	// TransactionHash identifies the submission the receipt confirms.
	TransactionHash string `json:"transactionHash"`

	// Status is the hex-encoded execution status ("0x1" on success).
	Status string `json:"status"`

	// BlockNumber is the hex-encoded height the transaction was mined at.
	BlockNumber string `json:"blockNumber"`

	// Logs are the events emitted by the storage processor.
	Logs []ReceiptLog `json:"logs"`
}

// ReceiptLog is a single emitted event.
type ReceiptLog struct {
	// Topics are the indexed event fields. For an entity-created event
	// the second topic is the new entity key.
	Topics []string `json:"topics"`

	// Data is the hex-encoded unindexed payload. For an entity-created
	// event it holds the block at which the entity expires.
	Data string `json:"data"`
}

// CreatedEntity extracts the created note's id and expiry block from the
// first log. Returns [ErrMalformedReceipt] when the log or topic layout is
// not the entity-created shape.
func (r Receipt) CreatedEntity() (noteID string, expiresAtBlock uint64, err error) {
	if len(r.Logs) < 1 || len(r.Logs[0].Topics) < 2 || r.Logs[0].Topics[1] == "" {
		return "", 0, ErrMalformedReceipt
	}

	block, err := ParseHexUint(r.Logs[0].Data)
	if err != nil {
		return "", 0, ErrMalformedReceipt
	}
	return r.Logs[0].Topics[1], block, nil
}

// ParseHexUint decodes a 0x-prefixed hexadecimal quantity. A bare decimal
// string is accepted too, matching the looser encoding some nodes use.
func ParseHexUint(s string) (uint64, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
