// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ErrAuthenticationFailed is returned when a blob fails to open. It covers
// both a wrong password and tampered ciphertext; the two cases must stay
// indistinguishable to the caller.
var ErrAuthenticationFailed = errors.New("authentication failed")

// keySalt is the fixed key-derivation salt, tied to the application name.
// Changing it would make every already-stored encrypted note unreadable.
const keySalt = "Golem dPaste"

const (
	// keyIterations is the PBKDF2 iteration count. Deliberately high so
	// offline brute force against short passwords stays expensive.
	keyIterations = 1_000_000

	// keyLength is the derived AES-256 key size in bytes.
	keyLength = 32

	nonceSize = 12
)

// box is the private implementation of [Box].
type box struct {
	iterations int
}

// NewBox constructs the production [Box]: PBKDF2-HMAC-SHA256 with one
// million iterations and AES-256-GCM.
func NewBox() Box {
	return &box{iterations: keyIterations}
}

func (b *box) deriveKey(password string) []byte {
	return pbkdf2.Key([]byte(password), []byte(keySalt), b.iterations, keyLength, sha256.New)
}

// Encrypt implements [Box]. The returned blob is nonce ‖ ciphertext ‖ tag;
// the nonce is drawn fresh from the OS CSPRNG on every call so a key is
// never paired with a repeated nonce.
func (b *box) Encrypt(plaintext []byte, password string) ([]byte, error) {
	gcm, err := b.aead(password)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so Decrypt can split it back out.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [Box]. It splits the first 12 bytes as the nonce,
// re-derives the key, and opens the remainder. Any verification failure is
// mapped to [ErrAuthenticationFailed].
func (b *box) Decrypt(blob []byte, password string) ([]byte, error) {
	gcm, err := b.aead(password)
	if err != nil {
		return nil, err
	}

	if len(blob) < nonceSize {
		return nil, ErrAuthenticationFailed
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func (b *box) aead(password string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(b.deriveKey(password))
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
