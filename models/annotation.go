// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package models

import (
	"errors"
	"strconv"
	"time"
)

// AppID identifies the dPaste application namespace on the shared
// Golem Base storage layer. Entities written by other applications carry a
// different value and are never treated as pastes.
const AppID = "59c2a455-ee2f-45cb-8e2c-cc74e79f6748"

// AnnotationVersion is the single metadata version this build reads and
// writes. Stored annotations with any other version are rejected on read.
const AnnotationVersion = "1.0.0"

// Annotation wire keys. The storage layer is schemaless key-value, so the
// reader and writer must agree on these strings exactly.
const (
	KeyAppID = "app-id"

	keyNamespace = "io.golem-base.dpaste"

	KeyCreatedAt = keyNamespace + ".created-at"
	KeyLanguage  = keyNamespace + ".language"
	KeyVersion   = keyNamespace + ".version"
	KeyEncrypted = keyNamespace + ".encrypted"
)

// ErrInvalidVersion is returned when stored annotations carry a version
// other than [AnnotationVersion]. There is no migration path; the caller
// surfaces the note as unsupported.
var ErrInvalidVersion = errors.New("unsupported note version")

// AnnotationDraft is the write-phase metadata of a note: it exists only
// between creation and submission and always carries a TTL in blocks.
// A draft never has an expiry block; that value is assigned by the chain.
type AnnotationDraft struct {
	// Language is the syntax-highlighting tag chosen at creation time.
	Language string

	// CreatedAt is the creation time in unix seconds. Stamped once,
	// never modified.
	CreatedAt int64

	// TTLBlocks is the number of blocks the entity is paid to persist.
	TTLBlocks uint64

	// Encrypted reports whether the payload was password-encrypted
	// before submission.
	Encrypted bool
}

// NewAnnotationDraft builds the metadata for a note about to be submitted,
// stamping the current time and the fixed annotation version.
func NewAnnotationDraft(language string, ttlBlocks uint64, encrypted bool) AnnotationDraft {
	return AnnotationDraft{
		Language:  language,
		CreatedAt: time.Now().Unix(),
		TTLBlocks: ttlBlocks,
		Encrypted: encrypted,
	}
}

// StringAnnotations serializes the draft's string-valued fields for
// submission. The boolean encrypted flag travels as "true"/"false".
func (a AnnotationDraft) StringAnnotations() []StringAnnotation {
	return []StringAnnotation{
		{Key: KeyVersion, Value: AnnotationVersion},
		{Key: KeyLanguage, Value: a.Language},
		{Key: KeyAppID, Value: AppID},
		{Key: KeyEncrypted, Value: strconv.FormatBool(a.Encrypted)},
	}
}

// NumericAnnotations serializes the draft's numeric-valued fields for
// submission.
func (a AnnotationDraft) NumericAnnotations() []NumericAnnotation {
	return []NumericAnnotation{
		{Key: KeyCreatedAt, Value: uint64(a.CreatedAt)},
	}
}

// AnnotationRecord is the read-phase metadata of a note reconstructed from
// stored annotations. Unlike a draft it never carries a TTL — only the
// absolute block at which the entity expires.
type AnnotationRecord struct {
	// AppID is the application namespace read back from storage.
	AppID string

	// Language is the stored syntax-highlighting tag. May be a value
	// this build does not recognize; callers substitute a default.
	Language string

	// CreatedAt is the creation time in unix seconds.
	CreatedAt int64

	// Version is the stored metadata version. Always equals
	// [AnnotationVersion] for records produced by ParseAnnotations.
	Version string

	// ExpiresAtBlock is the chain height at which the entity expires.
	ExpiresAtBlock uint64

	// Encrypted reports whether the stored payload is ciphertext.
	Encrypted bool
}

// ParseAnnotations reconstructs an AnnotationRecord from the two flat
// key-value collections attached to a stored entity. Missing keys yield
// zero values; an unexpected version is a hard failure with
// [ErrInvalidVersion]. Language is not validated here — an unknown tag is
// the caller's concern, not a malformed note.
func ParseAnnotations(stringAnns []StringAnnotation, numericAnns []NumericAnnotation, expiresAtBlock uint64) (AnnotationRecord, error) {
	strs := make(map[string]string, len(stringAnns))
	for _, a := range stringAnns {
		strs[a.Key] = a.Value
	}
	nums := make(map[string]uint64, len(numericAnns))
	for _, a := range numericAnns {
		nums[a.Key] = a.Value
	}

	record := AnnotationRecord{
		AppID:          strs[KeyAppID],
		Language:       strs[KeyLanguage],
		CreatedAt:      int64(nums[KeyCreatedAt]),
		Version:        strs[KeyVersion],
		ExpiresAtBlock: expiresAtBlock,
		Encrypted:      strs[KeyEncrypted] == "true",
	}
	if record.Version != AnnotationVersion {
		return AnnotationRecord{}, ErrInvalidVersion
	}
	return record, nil
}
