// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitbuilder/internal/domain/entity"
	domainerrors "fitbuilder/internal/domain/errors"
	"fitbuilder/internal/domain/repository"
	"fitbuilder/internal/domain/service"
	"fitbuilder/internal/usecase"
)

// planService implements the PlanUsecase interface.
type planService struct {
	profileRepo repository.ProfileRepository
	generator   service.PlanGenerator
	logger      *slog.Logger
}

// PlanServiceParams holds dependencies for planService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Generator   service.PlanGenerator
	Logger      *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		profileRepo: params.ProfileRepo,
		generator:   params.Generator,
		logger:      params.Logger,
	}
}

// GenerateWorkoutPlan generates a workout plan from the account's onboarding
// answers and persists it into the profile.
func (srv *planService) GenerateWorkoutPlan(ctx context.Context, accountID string) (*entity.WorkoutPlan, error) {
	srv.logger.Info("Generating workout plan", slog.String("accountID", accountID))

	profile, err := srv.profileRepo.Get(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for workout plan")
	}

	plan, err := srv.generator.GenerateWorkoutPlan(ctx, &profile.Onboarding)
	if err != nil {
		srv.logger.Error("Workout plan generation failed", slog.String("accountID", accountID), slog.Any("error", err))

		return nil, domainerrors.ErrGenerationFailed.WrapMessage(err.Error())
	}

	profile.Plans.WorkoutPlan = plan
	if err := srv.profileRepo.Replace(ctx, accountID, profile); err != nil {
		return nil, errors.Wrap(err, "failed to persist workout plan")
	}

	return plan, nil
}

// GenerateDietPlan generates a diet plan from the account's onboarding
// answers and persists it into the profile.
func (srv *planService) GenerateDietPlan(ctx context.Context, accountID string) (*entity.DietPlan, error) {
	srv.logger.Info("Generating diet plan", slog.String("accountID", accountID))

	profile, err := srv.profileRepo.Get(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for diet plan")
	}

	plan, err := srv.generator.GenerateDietPlan(ctx, &profile.Onboarding)
	if err != nil {
		srv.logger.Error("Diet plan generation failed", slog.String("accountID", accountID), slog.Any("error", err))

		return nil, domainerrors.ErrGenerationFailed.WrapMessage(err.Error())
	}

	profile.Plans.DietPlan = plan
	if err := srv.profileRepo.Replace(ctx, accountID, profile); err != nil {
		return nil, errors.Wrap(err, "failed to persist diet plan")
	}

	return plan, nil
}
