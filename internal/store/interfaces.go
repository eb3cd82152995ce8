package store

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_store_mock.go -package=mock

// KVStore is the durable local key-value store backing the transaction
// ledger. It mirrors the web client's localStorage surface: string keys,
// string values, absence reported explicitly.
//
// Implementations do not lock across processes. Two concurrent writers
// (two CLI invocations, or the CLI racing the web client on a shared
// profile) follow read-modify-write, last-writer-wins semantics; that race
// is accepted, not solved here.
type KVStore interface {
	// Get returns the value stored under key, with ok=false when the
	// key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
}
