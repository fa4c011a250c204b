package repository

import (
	"context"
	"errors"

	"fitbuilder/internal/domain/entity"
)

// ErrSessionNotFound is returned when no account is currently active.
var ErrSessionNotFound = errors.New("no active session")

// SessionRepository holds the single currently-active account. The session
// survives restarts; absence means "logged out".
type SessionRepository interface {
	// Current returns the active account, or ErrSessionNotFound.
	Current(ctx context.Context) (*entity.Account, error)

	// Set makes the given account the active session, replacing any
	// previous one.
	Set(ctx context.Context, account *entity.Account) error

	// Clear ends the session. Clearing an absent session is a no-op.
	Clear(ctx context.Context) error
}
