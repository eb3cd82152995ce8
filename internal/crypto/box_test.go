// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBox lowers the PBKDF2 cost so the property tests stay fast; the
// cipher construction is otherwise identical to the production box.
func testBox() *box {
	return &box{iterations: 4096}
}

func TestBox_RoundTrip(t *testing.T) {
	b := testBox()

	plaintexts := []string{"hello", "", "multi\nline\ntext", "päßwörd-téxt ✓"}
	for _, p := range plaintexts {
		blob, err := b.Encrypt([]byte(p), "secret")
		require.NoError(t, err)

		got, err := b.Decrypt(blob, "secret")
		require.NoError(t, err)
		assert.Equal(t, []byte(p), got)
	}
}

func TestBox_NonceIsFreshPerCall(t *testing.T) {
	b := testBox()

	blob1, err := b.Encrypt([]byte("same input"), "pw")
	require.NoError(t, err)
	blob2, err := b.Encrypt([]byte("same input"), "pw")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(blob1[:12], blob2[:12]), "expected different nonces")
	assert.False(t, bytes.Equal(blob1, blob2), "expected different ciphertexts")
}

func TestBox_WrongPassword(t *testing.T) {
	b := testBox()

	blob, err := b.Encrypt([]byte("attack at dawn"), "right password")
	require.NoError(t, err)

	_, err = b.Decrypt(blob, "wrong password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestBox_TamperDetection(t *testing.T) {
	b := testBox()

	blob, err := b.Encrypt([]byte("attack at dawn"), "pw")
	require.NoError(t, err)

	// flip a byte in the nonce, the ciphertext body, and the tag
	for _, i := range []int{0, len(blob) / 2, len(blob) - 1} {
		tampered := bytes.Clone(blob)
		tampered[i] ^= 0x01

		_, err := b.Decrypt(tampered, "pw")
		assert.ErrorIs(t, err, ErrAuthenticationFailed, "flipped byte %d", i)
	}
}

func TestBox_BlobTooShort(t *testing.T) {
	b := testBox()

	_, err := b.Decrypt([]byte{0x01, 0x02, 0x03}, "pw")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNewBox_ProductionParameters(t *testing.T) {
	if testing.Short() {
		t.Skip("full-cost key derivation")
	}

	b := NewBox()

	blob, err := b.Encrypt([]byte("hello"), "pw")
	require.NoError(t, err)

	got, err := b.Decrypt(blob, "pw")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}
