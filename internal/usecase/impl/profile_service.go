// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/repository"
	"fitbuilder/internal/usecase"
)

// profileService implements the ProfileUsecase interface. Every derived
// operation is read-entire-profile, mutate, replace-whole.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// Get returns the account's profile, defaulting when none is stored.
func (srv *profileService) Get(ctx context.Context, accountID string) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.Get(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// Replace overwrites the entire profile aggregate.
func (srv *profileService) Replace(ctx context.Context, accountID string, profile *entity.UserProfile) error {
	srv.logger.Debug("Replacing profile", slog.String("accountID", accountID))

	return errors.Wrap(srv.profileRepo.Replace(ctx, accountID, profile), "failed to replace profile")
}

// CompleteOnboarding stores the questionnaire answers and marks the account
// as onboarded regardless of prior state.
func (srv *profileService) CompleteOnboarding(ctx context.Context, accountID string, data *entity.OnboardingData) (*entity.UserProfile, error) {
	srv.logger.Info("Completing onboarding", slog.String("accountID", accountID))

	return srv.update(ctx, accountID, func(profile *entity.UserProfile) {
		profile.Onboarding = *data
		profile.HasOnboarded = true
	})
}

// AddWeightEntry appends a measurement; entries are never reordered.
func (srv *profileService) AddWeightEntry(ctx context.Context, accountID string, entry entity.WeightEntry) (*entity.UserProfile, error) {
	srv.logger.Debug("Adding weight entry",
		slog.String("accountID", accountID),
		slog.Float64("weight", entry.Weight),
	)

	return srv.update(ctx, accountID, func(profile *entity.UserProfile) {
		profile.Progress.WeightHistory = append(profile.Progress.WeightHistory, entry)
	})
}

// UpdateHabits replaces the habit tracker state wholesale.
func (srv *profileService) UpdateHabits(ctx context.Context, accountID string, habits entity.HabitState) (*entity.UserProfile, error) {
	srv.logger.Debug("Updating habits", slog.String("accountID", accountID))

	return srv.update(ctx, accountID, func(profile *entity.UserProfile) {
		profile.Tools.Habits = habits
	})
}

// SavePlans stores generated plans; nil inputs preserve the stored plan.
func (srv *profileService) SavePlans(ctx context.Context, accountID string, workout *entity.WorkoutPlan, diet *entity.DietPlan) (*entity.UserProfile, error) {
	srv.logger.Debug("Saving plans", slog.String("accountID", accountID))

	return srv.update(ctx, accountID, func(profile *entity.UserProfile) {
		if workout != nil {
			profile.Plans.WorkoutPlan = workout
		}
		if diet != nil {
			profile.Plans.DietPlan = diet
		}
	})
}

// update is the shared read-mutate-replace cycle. It is not atomic against
// concurrent writers of the same profile; the last write wins.
func (srv *profileService) update(ctx context.Context, accountID string, mutate func(*entity.UserProfile)) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.Get(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	mutate(profile)

	if err := srv.profileRepo.Replace(ctx, accountID, profile); err != nil {
		return nil, errors.Wrap(err, "failed to store updated profile")
	}

	return profile, nil
}
