// Package bolt implements the durable local key-value store on top of bbolt.
// A single file with a single bucket stands in for the browser profile's
// localStorage: synchronous writes, no cross-key transactions exposed.
package bolt

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	bbolt "go.etcd.io/bbolt"
	"go.uber.org/fx"

	"fitbuilder/config"
	"fitbuilder/internal/domain/repository"
)

var bucketName = []byte("fitbuilder")

// Store is a bbolt-backed KVStore.
type Store struct {
	db *bbolt.DB
}

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens (creating if needed) the database file configured under
// storage.path and registers its shutdown hook.
func New(params Params) (repository.KVStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.Path == "" {
		return nil, errors.New("storage.path must be configured for the bolt store")
	}

	db, err := bbolt.Open(params.Config.Storage.Path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open local store at %s", params.Config.Storage.Path)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)

		return err
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create store bucket")
	}

	store := &Store{db: db}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing local store", slog.String("path", params.Config.Storage.Path))

			return store.Close()
		},
	})

	return store, nil
}

// Open creates a store without Fx wiring, for tools and tests.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open local store at %s", path)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)

		return err
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create store bucket")
	}

	return &Store{db: db}, nil
}

// Get returns the value stored under key, with found == false for a missing key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, errors.WithStack(err)
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw == nil {
			return nil
		}

		// The slice is only valid inside the transaction.
		value = make([]byte, len(raw))
		copy(value, raw)

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read key %s", key)
	}

	return value, value != nil, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})

	return errors.Wrapf(err, "failed to write key %s", key)
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})

	return errors.Wrapf(err, "failed to delete key %s", key)
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	return errors.WithStack(s.db.Close())
}
