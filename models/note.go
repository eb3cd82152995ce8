// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package models

import "errors"

// ErrMissingTTL is returned when a note without a retention period is
// turned into a storage submission. Only drafts built by the note service
// carry a TTL; it guards against re-submitting a fetched note.
var ErrMissingTTL = errors.New("note has no TTL")

// Payload is the content of a note: exactly one of the two variants is
// active at any time. The interface is sealed so no third variant can be
// introduced outside this package.
type Payload interface {
	isPayload()
}

// PlaintextPayload holds readable note text.
type PlaintextPayload struct {
	Text string
}

// EncryptedPayload holds the note ciphertext as it rests on chain:
// a 12-byte nonce followed by the AES-GCM sealed text.
type EncryptedPayload struct {
	Data []byte
}

func (PlaintextPayload) isPayload() {}
func (EncryptedPayload) isPayload() {}

// NoteDraft is a note between creation and submission. Its metadata is an
// [AnnotationDraft] and therefore always carries a TTL.
type NoteDraft struct {
	Payload  Payload
	Metadata AnnotationDraft
}

// StorageSubmission converts the draft into the shape the storage
// collaborator accepts. Returns [ErrMissingTTL] when the draft has no
// retention period.
func (d NoteDraft) StorageSubmission() (StorageSubmission, error) {
	if d.Metadata.TTLBlocks == 0 {
		return StorageSubmission{}, ErrMissingTTL
	}

	var data []byte
	switch p := d.Payload.(type) {
	case EncryptedPayload:
		data = p.Data
	case PlaintextPayload:
		data = []byte(p.Text)
	}

	return StorageSubmission{
		Data:               data,
		TTLBlocks:          d.Metadata.TTLBlocks,
		StringAnnotations:  d.Metadata.StringAnnotations(),
		NumericAnnotations: d.Metadata.NumericAnnotations(),
	}, nil
}

// Note is a stored note fetched back from the chain. Its metadata is an
// [AnnotationRecord]. The zero Note is not meaningful; values are built by
// the note service.
type Note struct {
	Payload  Payload
	Metadata AnnotationRecord
}

// Encrypted reports whether the note still holds ciphertext.
func (n Note) Encrypted() bool {
	_, ok := n.Payload.(EncryptedPayload)
	return ok
}

// PlaintextText returns the note text and true when the payload is
// readable, or "" and false while it is still encrypted.
func (n Note) PlaintextText() (string, bool) {
	p, ok := n.Payload.(PlaintextPayload)
	if !ok {
		return "", false
	}
	return p.Text, true
}

// Decrypted returns a copy of the note with the given plaintext in place
// of the ciphertext and the encrypted flag cleared. The transition is
// one-way; the original value is left untouched so a failed decrypt
// upstream cannot leave a half-updated note behind.
func (n Note) Decrypted(text string) Note {
	n.Payload = PlaintextPayload{Text: text}
	n.Metadata.Encrypted = false
	return n
}
