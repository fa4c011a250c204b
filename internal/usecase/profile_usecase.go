// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fitbuilder/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related operations.
// Every derived operation reads the whole aggregate, mutates a copy, and
// replaces it wholesale; the operations are not atomic against concurrent
// writers of the same profile.
type ProfileUsecase interface {
	// Get returns the account's profile, or the default empty profile when
	// none has been stored. It never fails for a missing profile.
	Get(ctx context.Context, accountID string) (*entity.UserProfile, error)

	// Replace overwrites the entire profile aggregate.
	Replace(ctx context.Context, accountID string, profile *entity.UserProfile) error

	// CompleteOnboarding stores the questionnaire answers and forces
	// hasOnboarded to true. Applying the same answers twice yields the same
	// profile.
	CompleteOnboarding(ctx context.Context, accountID string, data *entity.OnboardingData) (*entity.UserProfile, error)

	// AddWeightEntry appends a measurement to the weight history. History
	// order is append order.
	AddWeightEntry(ctx context.Context, accountID string, entry entity.WeightEntry) (*entity.UserProfile, error)

	// UpdateHabits replaces the habit tracker state wholesale.
	UpdateHabits(ctx context.Context, accountID string, habits entity.HabitState) (*entity.UserProfile, error)

	// SavePlans stores generated plans. A nil plan leaves the stored one
	// untouched.
	SavePlans(ctx context.Context, accountID string, workout *entity.WorkoutPlan, diet *entity.DietPlan) (*entity.UserProfile, error)
}
