package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/box_mock.go -package=mock

// Box is the password-based authenticated encryption used for note
// payloads. It knows nothing about notes, storage, or the chain; it is a
// pure function of its inputs plus CPU time.
//
// The key is derived from the password with PBKDF2-HMAC-SHA256 over a
// fixed application salt. The salt is deliberately not per-note: every
// note encrypted with the same password uses the same key, which is an
// accepted compatibility constraint with already-stored notes. Freshness
// comes from the random 96-bit nonce drawn per Encrypt call.
type Box interface {
	// Encrypt seals plaintext under a key derived from password and
	// returns nonce ‖ ciphertext ‖ tag as one blob.
	Encrypt(plaintext []byte, password string) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. A wrong password and a
	// corrupted blob are indistinguishable: both return
	// [ErrAuthenticationFailed].
	Decrypt(blob []byte, password string) ([]byte, error)
}
