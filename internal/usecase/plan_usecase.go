// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fitbuilder/internal/domain/entity"
)

// PlanUsecase drives the coaching capability: it feeds the account's
// onboarding answers to the generator and persists the result into the
// profile's plans.
type PlanUsecase interface {
	GenerateWorkoutPlan(ctx context.Context, accountID string) (*entity.WorkoutPlan, error)
	GenerateDietPlan(ctx context.Context, accountID string) (*entity.DietPlan, error)
}
