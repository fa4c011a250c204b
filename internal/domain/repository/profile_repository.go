package repository

import (
	"context"

	"fitbuilder/internal/domain/entity"
)

// ProfileRepository stores one UserProfile aggregate per account, addressed
// by account id. Updates replace the entire aggregate; there is no merge and
// no optimistic concurrency, so concurrent writers race and the last write
// wins.
type ProfileRepository interface {
	// Get returns the stored profile, or the default empty profile when
	// none exists. It never fails for a missing profile.
	Get(ctx context.Context, accountID string) (*entity.UserProfile, error)

	// Replace overwrites the entire stored profile.
	Replace(ctx context.Context, accountID string, profile *entity.UserProfile) error
}
