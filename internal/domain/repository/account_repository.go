package repository

import (
	"context"
	"errors"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on storage-specific errors.
var (
	// ErrAccountExists is returned when registering an email that is already in the directory.
	ErrAccountExists = errors.New("account already exists")
	// ErrCredentialNotFound is returned when no credential is stored for an email.
	ErrCredentialNotFound = errors.New("credential not found")
)

// AccountRepository is the account directory: the mapping from login email to
// stored password. The whole directory lives in one aggregate entry and every
// change is a read-modify-write of that entry.
type AccountRepository interface {
	// CreateCredential inserts a new email/password pair.
	// Returns ErrAccountExists when the email is already registered; the
	// directory is left unchanged in that case.
	CreateCredential(ctx context.Context, email, storedPassword string) error

	// FindCredential returns the stored password for an email, or
	// ErrCredentialNotFound.
	FindCredential(ctx context.Context, email string) (string, error)

	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int, error)
}
