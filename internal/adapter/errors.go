package adapter

import "errors"

var (
	// ErrEntityNotFound marks an entity that is absent or already past
	// its TTL. Callers treat this as an empty state, not a fault.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrRPCTimeout marks a JSON-RPC round trip that exceeded the
	// configured request timeout. Retryable, unlike validation errors.
	ErrRPCTimeout = errors.New("rpc request timed out")

	// ErrRPC marks any other transport or node-side failure. The
	// underlying message is preserved verbatim for user display since
	// no structured recovery is possible at this layer.
	ErrRPC = errors.New("rpc request failed")
)
