// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTransactions_PreservesInsertionOrder(t *testing.T) {
	var user UserTransactions
	user.Set("0xccc", PendingTx())
	user.Set("0xaaa", PendingTx())
	user.Set("0xbbb", PendingTx())

	entries := user.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "0xccc", entries[0].TxID)
	assert.Equal(t, "0xaaa", entries[1].TxID)
	assert.Equal(t, "0xbbb", entries[2].TxID)
}

func TestUserTransactions_OverwriteKeepsPosition(t *testing.T) {
	var user UserTransactions
	user.Set("0x1", PendingTx())
	user.Set("0x2", PendingTx())
	user.Set("0x1", CompleteTx("0xnote", "2026-09-01T10:00:00Z"))

	entries := user.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "0x1", entries[0].TxID)
	assert.Equal(t, TxComplete, entries[0].State.Type)
	assert.Equal(t, "0xnote", entries[0].State.NoteID)
}

func TestTransactionList_WireShape(t *testing.T) {
	var ledger TransactionList
	user := ledger.Account("0xwallet")
	user.Set("0xtx1", PendingTx())
	user.Set("0xtx2", CompleteTx("0xnote", "2026-09-01T10:00:00Z"))

	raw, err := json.Marshal(ledger)
	require.NoError(t, err)

	// the persisted shape is a contract shared with the web client
	assert.JSONEq(t, `{
		"0xwallet": {
			"0xtx1": {"type": "pending"},
			"0xtx2": {"type": "complete", "noteId": "0xnote", "expirationDate": "2026-09-01T10:00:00Z"}
		}
	}`, string(raw))
}

func TestTransactionList_RoundTripKeepsOrder(t *testing.T) {
	var ledger TransactionList
	user := ledger.Account("0xwallet")
	user.Set("0xz", PendingTx())
	user.Set("0xa", CompleteTx("0xnote", "2026-09-01T10:00:00Z"))
	user.Set("0xm", PendingTx())

	raw, err := json.Marshal(ledger)
	require.NoError(t, err)

	var got TransactionList
	require.NoError(t, json.Unmarshal(raw, &got))

	gotUser, ok := got.Lookup("0xwallet")
	require.True(t, ok)
	entries := gotUser.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "0xz", entries[0].TxID)
	assert.Equal(t, "0xa", entries[1].TxID)
	assert.Equal(t, "0xm", entries[2].TxID)
	assert.Equal(t, "0xnote", entries[1].State.NoteID)
}

func TestTransactionList_ReadsWebClientBlob(t *testing.T) {
	blob := `{"0xWaLLet":{"0xdead":{"type":"pending"},"0xbeef":{"type":"complete","noteId":"0x01","expirationDate":"2026-08-30T12:00:00.000Z"}}}`

	var ledger TransactionList
	require.NoError(t, json.Unmarshal([]byte(blob), &ledger))

	user, ok := ledger.Lookup("0xWaLLet")
	require.True(t, ok)
	assert.Equal(t, 2, user.Len())

	state, ok := user.Get("0xbeef")
	require.True(t, ok)
	assert.Equal(t, TxComplete, state.Type)
	assert.Equal(t, "2026-08-30T12:00:00.000Z", state.ExpirationDate)
}
