package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/usecase"
)

func registerTestAccount(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	output, err := env.authUC.Register(context.Background(), &usecase.RegisterInput{Email: email, Password: "pw"})
	require.NoError(t, err)

	return output.Account.ID
}

func TestProfileService_GetReturnsDefaultsForUnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	profile, err := env.profileUC.Get(context.Background(), "ghost@x.com")
	require.NoError(t, err)

	assert.False(t, profile.HasOnboarded)
	assert.Equal(t, 3, profile.Onboarding.Availability.Days)
	assert.Equal(t, 60, profile.Onboarding.Availability.Time)
	assert.Equal(t, 3, profile.Onboarding.MealsPerDay)
	assert.Empty(t, profile.Progress.WeightHistory)
	assert.Nil(t, profile.Plans.WorkoutPlan)
	assert.Nil(t, profile.Plans.DietPlan)
}

func TestProfileService_CompleteOnboarding(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := registerTestAccount(t, env, "a@x.com")

	data := &entity.OnboardingData{
		Goal:          "Emagrecimento",
		Name:          "Ana",
		Age:           30,
		Height:        175,
		CurrentWeight: 82,
		TargetWeight:  75,
		Availability:  entity.Availability{Days: 4, Time: 45},
		MealsPerDay:   4,
	}

	profile, err := env.profileUC.CompleteOnboarding(ctx, accountID, data)
	require.NoError(t, err)
	assert.True(t, profile.HasOnboarded)
	assert.Equal(t, "Emagrecimento", profile.Onboarding.Goal)

	// Completing again simply overwrites the answers.
	data.Goal = "Hipertrofia"
	profile, err = env.profileUC.CompleteOnboarding(ctx, accountID, data)
	require.NoError(t, err)
	assert.True(t, profile.HasOnboarded)
	assert.Equal(t, "Hipertrofia", profile.Onboarding.Goal)

	stored, err := env.profileUC.Get(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, profile, stored)
}

func TestProfileService_AddWeightEntryAppendsInOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := registerTestAccount(t, env, "a@x.com")

	_, err := env.profileUC.AddWeightEntry(ctx, accountID, entity.WeightEntry{Date: "2026-01-01", Weight: 80})
	require.NoError(t, err)
	profile, err := env.profileUC.AddWeightEntry(ctx, accountID, entity.WeightEntry{Date: "2026-01-08", Weight: 78})
	require.NoError(t, err)

	require.Len(t, profile.Progress.WeightHistory, 2)
	assert.Equal(t, entity.WeightEntry{Date: "2026-01-01", Weight: 80}, profile.Progress.WeightHistory[0])
	assert.Equal(t, entity.WeightEntry{Date: "2026-01-08", Weight: 78}, profile.Progress.WeightHistory[1])
}

func TestProfileService_UpdateHabitsReplacesWholesale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := registerTestAccount(t, env, "a@x.com")

	first := entity.HabitState{
		"water":    {true, true, false},
		"sleep":    {false, false, false},
		"training": {true, false, true},
	}
	_, err := env.profileUC.UpdateHabits(ctx, accountID, first)
	require.NoError(t, err)

	second := entity.HabitState{"water": {true}}
	profile, err := env.profileUC.UpdateHabits(ctx, accountID, second)
	require.NoError(t, err)

	assert.Equal(t, second, profile.Tools.Habits)
	assert.NotContains(t, profile.Tools.Habits, "sleep")
}

func TestProfileService_SavePlansPreservesNilSlots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := registerTestAccount(t, env, "a@x.com")

	workout := &entity.WorkoutPlan{
		WeeklyPlan: []entity.WorkoutDay{{
			Day: "Segunda-feira",
			Exercises: []entity.Exercise{
				{Name: "Supino Reto", Sets: "4", Reps: "8-12"},
			},
		}},
	}
	profile, err := env.profileUC.SavePlans(ctx, accountID, workout, nil)
	require.NoError(t, err)
	require.NotNil(t, profile.Plans.WorkoutPlan)
	assert.Nil(t, profile.Plans.DietPlan)

	diet := &entity.DietPlan{
		DailyCalories: 2200,
		Macros:        entity.Macros{Protein: 180, Carbs: 250, Fat: 60},
	}
	profile, err = env.profileUC.SavePlans(ctx, accountID, nil, diet)
	require.NoError(t, err)

	// The workout saved earlier survives a diet-only save.
	require.NotNil(t, profile.Plans.WorkoutPlan)
	assert.Equal(t, workout, profile.Plans.WorkoutPlan)
	assert.Equal(t, diet, profile.Plans.DietPlan)
}

func TestProfileService_ReplaceOverwritesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := registerTestAccount(t, env, "a@x.com")

	_, err := env.profileUC.AddWeightEntry(ctx, accountID, entity.WeightEntry{Date: "2026-01-01", Weight: 80})
	require.NoError(t, err)

	require.NoError(t, env.profileUC.Replace(ctx, accountID, entity.NewUserProfile()))

	profile, err := env.profileUC.Get(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, profile.Progress.WeightHistory)
}
