// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Transaction states as persisted in the ledger blob. The two-variant
// tagged shape is a durable contract shared with the web client, which
// reads the same local store: field names must not change.
const (
	TxPending  = "pending"
	TxComplete = "complete"
)

// TxState is one ledger entry. A pending entry carries only Type; a
// complete entry adds the created note id and its estimated expiration.
type TxState struct {
	// Type is [TxPending] or [TxComplete].
	Type string `json:"type"`

	// NoteID is the created entity key. Set only when Type is complete.
	NoteID string `json:"noteId,omitempty"`

	// ExpirationDate is the estimated wall-clock expiry, serialized as
	// an ISO-8601 string at resolution time. Set only when complete.
	ExpirationDate string `json:"expirationDate,omitempty"`
}

// PendingTx returns the state recorded the moment a submission is
// accepted by the wallet.
func PendingTx() TxState {
	return TxState{Type: TxPending}
}

// CompleteTx returns the state recorded once a mined receipt has been
// resolved to a note id and expiry estimate.
func CompleteTx(noteID, expirationDate string) TxState {
	return TxState{Type: TxComplete, NoteID: noteID, ExpirationDate: expirationDate}
}

// TxEntry pairs a transaction id with its state for ordered listings.
type TxEntry struct {
	TxID  string
	State TxState
}

// UserTransactions is one account's ledger entries in first-seen order.
// JSON object key order is the order contract: the web client relies on
// it, so marshalling and unmarshalling both preserve it.
type UserTransactions struct {
	order []string
	items map[string]TxState
}

// Set inserts or overwrites the state for txID. A transaction keeps its
// original position when overwritten.
func (u *UserTransactions) Set(txID string, state TxState) {
	if u.items == nil {
		u.items = make(map[string]TxState)
	}
	if _, seen := u.items[txID]; !seen {
		u.order = append(u.order, txID)
	}
	u.items[txID] = state
}

// Get returns the state for txID.
func (u *UserTransactions) Get(txID string) (TxState, bool) {
	state, ok := u.items[txID]
	return state, ok
}

// Len returns the number of entries.
func (u *UserTransactions) Len() int {
	return len(u.order)
}

// Entries returns the entries in first-seen order.
func (u *UserTransactions) Entries() []TxEntry {
	entries := make([]TxEntry, 0, len(u.order))
	for _, txID := range u.order {
		entries = append(entries, TxEntry{TxID: txID, State: u.items[txID]})
	}
	return entries
}

// MarshalJSON writes the entries as a JSON object in first-seen order.
func (u UserTransactions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, txID := range u.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(txID)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(u.items[txID])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping its key order as the
// first-seen order.
func (u *UserTransactions) UnmarshalJSON(data []byte) error {
	u.order = nil
	u.items = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		txID, ok := tok.(string)
		if !ok {
			return fmt.Errorf("transactions: unexpected key token %v", tok)
		}
		var state TxState
		if err := dec.Decode(&state); err != nil {
			return err
		}
		u.Set(txID, state)
	}
	_, err := dec.Token() // closing brace
	return err
}

// TransactionList is the whole persisted ledger: account id to that
// account's transactions, account order preserved the same way.
type TransactionList struct {
	order []string
	items map[string]*UserTransactions
}

// Account returns the entry set for accountID, creating it when absent.
func (l *TransactionList) Account(accountID string) *UserTransactions {
	if l.items == nil {
		l.items = make(map[string]*UserTransactions)
	}
	user, ok := l.items[accountID]
	if !ok {
		user = &UserTransactions{}
		l.items[accountID] = user
		l.order = append(l.order, accountID)
	}
	return user
}

// Lookup returns the entry set for accountID without creating it.
func (l *TransactionList) Lookup(accountID string) (*UserTransactions, bool) {
	user, ok := l.items[accountID]
	return user, ok
}

// MarshalJSON writes the ledger as a nested JSON object, account order
// preserved.
func (l TransactionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, accountID := range l.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(accountID)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(l.items[accountID])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the nested ledger object keeping account order.
func (l *TransactionList) UnmarshalJSON(data []byte) error {
	l.order = nil
	l.items = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		accountID, ok := tok.(string)
		if !ok {
			return fmt.Errorf("transactions: unexpected key token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		user := l.Account(accountID)
		if err := user.UnmarshalJSON(raw); err != nil {
			return err
		}
	}
	_, err := dec.Token() // closing brace
	return err
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("transactions: expected %q, got %v", want, tok)
	}
	return nil
}
