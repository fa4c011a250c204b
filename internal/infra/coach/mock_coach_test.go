package coach

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/service"
)

func TestMockCoach_GenerateWorkoutPlan(t *testing.T) {
	mock := NewMockCoach(time.Millisecond, time.Millisecond)

	plan, err := mock.GenerateWorkoutPlan(context.Background(), &entity.OnboardingData{})
	require.NoError(t, err)

	require.Len(t, plan.WeeklyPlan, 5)
	assert.Equal(t, "Segunda-feira: Peito e Tríceps", plan.WeeklyPlan[0].Day)

	// Rest day carries an empty, non-nil exercise list.
	restDay := plan.WeeklyPlan[2]
	assert.Equal(t, "Quarta-feira: Descanso", restDay.Day)
	require.NotNil(t, restDay.Exercises)
	assert.Empty(t, restDay.Exercises)

	// Free-text reps values survive as-is.
	assert.Equal(t, "falha", plan.WeeklyPlan[1].Exercises[0].Reps)
	assert.Equal(t, "60s", plan.WeeklyPlan[4].Exercises[2].Reps)
}

func TestMockCoach_GenerateDietPlan(t *testing.T) {
	mock := NewMockCoach(time.Millisecond, time.Millisecond)

	plan, err := mock.GenerateDietPlan(context.Background(), &entity.OnboardingData{})
	require.NoError(t, err)

	assert.Equal(t, 2200, plan.DailyCalories)
	assert.Equal(t, entity.Macros{Protein: 180, Carbs: 250, Fat: 60}, plan.Macros)
	require.Len(t, plan.WeeklyPlan, 1)
	assert.Len(t, plan.WeeklyPlan[0].Meals, 4)
}

func TestMockCoach_AnalyzeFoodImage(t *testing.T) {
	mock := NewMockCoach(time.Millisecond, time.Millisecond)

	analysis, err := mock.AnalyzeFoodImage(context.Background(), &service.FoodImage{
		Base64Data: "aGVsbG8=",
		MimeType:   "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Frango Grelhado", "Brócolis", "Arroz Integral"}, analysis.IdentifiedFoods)
	assert.Equal(t, 550, analysis.Calories)
	assert.Equal(t, entity.RecommendationRecommended, analysis.Recommendation)
	assert.True(t, analysis.Recommendation.Valid())
}

func TestMockCoach_CanceledContextAbortsWait(t *testing.T) {
	mock := NewMockCoach(time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.GenerateWorkoutPlan(ctx, &entity.OnboardingData{})
	assert.ErrorIs(t, err, context.Canceled)
}
