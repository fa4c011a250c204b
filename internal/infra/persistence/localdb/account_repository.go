package localdb

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"fitbuilder/internal/domain/repository"
)

// accountRepository keeps the whole email -> stored password directory in a
// single aggregate entry, read-modify-written on every change.
type accountRepository struct {
	store repository.KVStore
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(store repository.KVStore) repository.AccountRepository {
	return &accountRepository{store: store}
}

// CreateCredential inserts a new email/password pair, failing with
// ErrAccountExists when the email is already registered.
func (r *accountRepository) CreateCredential(ctx context.Context, email, storedPassword string) error {
	directory, err := r.load(ctx)
	if err != nil {
		return err
	}

	if _, exists := directory[email]; exists {
		return repository.ErrAccountExists
	}

	directory[email] = storedPassword

	return r.save(ctx, directory)
}

// FindCredential returns the stored password for an email.
func (r *accountRepository) FindCredential(ctx context.Context, email string) (string, error) {
	directory, err := r.load(ctx)
	if err != nil {
		return "", err
	}

	stored, ok := directory[email]
	if !ok {
		return "", repository.ErrCredentialNotFound
	}

	return stored, nil
}

// Count returns the number of registered accounts.
func (r *accountRepository) Count(ctx context.Context) (int, error) {
	directory, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	return len(directory), nil
}

func (r *accountRepository) load(ctx context.Context) (map[string]string, error) {
	raw, found, err := r.store.Get(ctx, accountsKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read account directory")
	}
	if !found {
		return map[string]string{}, nil
	}

	directory := map[string]string{}
	if err := json.Unmarshal(raw, &directory); err != nil {
		return nil, errors.Wrap(err, "failed to decode account directory")
	}

	return directory, nil
}

func (r *accountRepository) save(ctx context.Context, directory map[string]string) error {
	raw, err := json.Marshal(directory)
	if err != nil {
		return errors.Wrap(err, "failed to encode account directory")
	}

	return errors.Wrap(r.store.Set(ctx, accountsKey, raw), "failed to write account directory")
}
