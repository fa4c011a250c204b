// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fitbuilder/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the account and its token pair after a successful
// credential operation.
type AuthOutput struct {
	Account      *entity.Account `json:"account"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
//
// Both Register and Login overwrite the durable session on success; a
// successful credential operation always makes that account the active one.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context) error

	// Current returns the active account restored from the durable session,
	// or nil when logged out.
	Current(ctx context.Context) (*entity.Account, error)
}
