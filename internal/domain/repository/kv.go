// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// KVStore is the durable string-keyed store every repository is built on.
// It offers plain get/set with no transactional guarantees across keys;
// aggregate updates are read-modify-write and the last writer wins.
type KVStore interface {
	// Get returns the value stored under key. A missing key is reported as
	// found == false, not as an error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying storage.
	Close() error
}
