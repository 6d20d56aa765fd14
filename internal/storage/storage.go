// Package storage is the durable key/value boundary for state
// snapshots. Values are opaque serialized blobs keyed by slice name,
// optionally scoped to a user (see Key and UserKey).
//
// Semantics are best-effort: callers treat save failures as non-fatal
// and absent keys as empty state. An absent key is signalled by a
// (nil, nil) return from Load, never by an error.
package storage

import "context"

// Store persists state snapshots.
type Store interface {
	// Save durably stores value under key, overwriting any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Load returns the value stored under key, or (nil, nil) when absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes key entirely. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying backend.
	Close() error
}
