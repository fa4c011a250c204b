package localdb

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/repository"
)

// sessionRepository persists the single active account under a fixed key so
// the session survives restarts.
type sessionRepository struct {
	store repository.KVStore
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store repository.KVStore) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Current returns the active account, or ErrSessionNotFound.
func (r *sessionRepository) Current(ctx context.Context) (*entity.Account, error) {
	raw, found, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if !found {
		return nil, repository.ErrSessionNotFound
	}

	account := new(entity.Account)
	if err := json.Unmarshal(raw, account); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return account, nil
}

// Set makes the given account the active session.
func (r *sessionRepository) Set(ctx context.Context, account *entity.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	return errors.Wrap(r.store.Set(ctx, sessionKey, raw), "failed to write session")
}

// Clear ends the session.
func (r *sessionRepository) Clear(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, sessionKey), "failed to clear session")
}
