package localdb

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/repository"
)

// profileRepository stores one JSON profile document per account. Every
// update replaces the entire document; concurrent writers race and the last
// write wins.
type profileRepository struct {
	store repository.KVStore
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store repository.KVStore) repository.ProfileRepository {
	return &profileRepository{store: store}
}

// Get returns the stored profile, or the default empty profile when none
// exists yet.
func (r *profileRepository) Get(ctx context.Context, accountID string) (*entity.UserProfile, error) {
	raw, found, err := r.store.Get(ctx, profileKey(accountID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile for %s", accountID)
	}
	if !found {
		return entity.NewUserProfile(), nil
	}

	profile := new(entity.UserProfile)
	if err := json.Unmarshal(raw, profile); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile for %s", accountID)
	}

	return profile, nil
}

// Replace overwrites the entire stored profile.
func (r *profileRepository) Replace(ctx context.Context, accountID string, profile *entity.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrapf(err, "failed to encode profile for %s", accountID)
	}

	return errors.Wrapf(r.store.Set(ctx, profileKey(accountID), raw), "failed to write profile for %s", accountID)
}
