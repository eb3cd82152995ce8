package service

import "errors"

var (
	// ErrEmptyNote rejects a note with no text before any I/O happens.
	ErrEmptyNote = errors.New("note text is empty")

	// ErrNoteTooLarge rejects a note whose UTF-8 byte length exceeds the
	// configured maximum. Checked against the plaintext, before
	// encryption.
	ErrNoteTooLarge = errors.New("note text is too large")

	// ErrEncryptionDisabled rejects a password when the encryption
	// feature switch is off.
	ErrEncryptionDisabled = errors.New("encryption is disabled")

	// ErrNoteNotFound marks a note id that is absent or already expired.
	// The caller treats this as a normal empty state, not a fault.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNotEncrypted marks a decrypt call on a note whose payload is
	// already plaintext. A programmer error, not a user-facing state.
	ErrNotEncrypted = errors.New("note is not encrypted")

	// ErrDecryptionFailed marks a wrong password or corrupted
	// ciphertext. Recoverable by retrying with another password; never
	// retried automatically.
	ErrDecryptionFailed = errors.New("decryption failed")
)
