package models

// StringAnnotation is a single string-valued key attached to a stored
// entity. The JSON field names follow the Golem Base RPC schema.
type StringAnnotation struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NumericAnnotation is a single numeric-valued key attached to a stored
// entity.
type NumericAnnotation struct {
	Key   string `json:"key"`
	Value uint64 `json:"value"`
}

// EntityMetaData is the metadata of an active entity as reported by the
// storage node.
type EntityMetaData struct {
	// ExpiresAtBlock is the chain height at which the entity is dropped.
	ExpiresAtBlock uint64 `json:"expiresAtBlock"`

	// Owner is the address that created the entity.
	Owner string `json:"owner"`

	// StringAnnotations holds the entity's string-valued keys.
	StringAnnotations []StringAnnotation `json:"stringAnnotations"`

	// NumericAnnotations holds the entity's numeric-valued keys.
	NumericAnnotations []NumericAnnotation `json:"numericAnnotations"`
}

// StorageSubmission is everything the storage collaborator needs to create
// one entity: the raw payload, how long to keep it, and its annotations.
type StorageSubmission struct {
	// Data is the payload exactly as it will rest on chain: UTF-8 text
	// for plaintext notes, nonce-prefixed ciphertext for encrypted ones.
	Data []byte

	// TTLBlocks is the retention period in blocks.
	TTLBlocks uint64

	// StringAnnotations and NumericAnnotations carry the note metadata.
	StringAnnotations  []StringAnnotation
	NumericAnnotations []NumericAnnotation
}
