// Package memory implements the KVStore contract on a plain map, for tests
// and the ephemeral storage mode. Unlike the durable store nothing survives a
// restart.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"fitbuilder/internal/domain/repository"
)

// Store is an in-memory KVStore. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory store.
func New() repository.KVStore {
	return &Store{data: make(map[string][]byte)}
}

// Get returns the value stored under key, with found == false for a missing key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	value := make([]byte, len(raw))
	copy(value, raw)

	return value, true, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored

	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
