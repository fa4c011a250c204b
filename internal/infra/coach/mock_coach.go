package coach

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/service"
)

// mockCoach resolves fixed canned responses after a simulated network delay.
// The canned content is independent of the input; the delay stands in for
// real backend latency so callers exercise their loading states.
type mockCoach struct {
	planDelay time.Duration
	scanDelay time.Duration
}

// NewMockCoach creates the canned-data coach used in development and tests.
func NewMockCoach(planDelay, scanDelay time.Duration) Coach {
	return &mockCoach{planDelay: planDelay, scanDelay: scanDelay}
}

// GenerateWorkoutPlan returns the canned weekly split after the plan delay.
func (m *mockCoach) GenerateWorkoutPlan(ctx context.Context, _ *entity.OnboardingData) (*entity.WorkoutPlan, error) {
	if err := m.wait(ctx, m.planDelay); err != nil {
		return nil, err
	}

	return &entity.WorkoutPlan{
		WeeklyPlan: []entity.WorkoutDay{
			{Day: "Segunda-feira: Peito e Tríceps", Exercises: []entity.Exercise{
				{Name: "Supino Reto", Sets: "4", Reps: "8-12"},
				{Name: "Crucifixo com Halteres", Sets: "3", Reps: "10-15"},
				{Name: "Tríceps Pulley", Sets: "4", Reps: "10-12"},
			}},
			{Day: "Terça-feira: Costas e Bíceps", Exercises: []entity.Exercise{
				{Name: "Barra Fixa", Sets: "3", Reps: "falha"},
				{Name: "Remada Curvada", Sets: "4", Reps: "8-10"},
				{Name: "Rosca Direta", Sets: "3", Reps: "10-12"},
			}},
			{Day: "Quarta-feira: Descanso", Exercises: []entity.Exercise{}},
			{Day: "Quinta-feira: Pernas", Exercises: []entity.Exercise{
				{Name: "Agachamento Livre", Sets: "4", Reps: "8-10"},
				{Name: "Leg Press", Sets: "3", Reps: "10-15"},
				{Name: "Cadeira Extensora", Sets: "3", Reps: "12-15"},
			}},
			{Day: "Sexta-feira: Ombros e Abdômen", Exercises: []entity.Exercise{
				{Name: "Desenvolvimento Militar", Sets: "4", Reps: "8-12"},
				{Name: "Elevação Lateral", Sets: "3", Reps: "12-15"},
				{Name: "Prancha", Sets: "3", Reps: "60s"},
			}},
		},
	}, nil
}

// GenerateDietPlan returns the canned meal template after the plan delay.
func (m *mockCoach) GenerateDietPlan(ctx context.Context, _ *entity.OnboardingData) (*entity.DietPlan, error) {
	if err := m.wait(ctx, m.planDelay); err != nil {
		return nil, err
	}

	return &entity.DietPlan{
		DailyCalories: 2200,
		Macros:        entity.Macros{Protein: 180, Carbs: 250, Fat: 60},
		WeeklyPlan: []entity.DietDay{
			{Day: "Todos os dias", Meals: []entity.Meal{
				{Name: "Café da Manhã", Description: "Ovos mexidos com aveia e uma porção de frutas vermelhas."},
				{Name: "Almoço", Description: "Frango grelhado, arroz integral, brócolis e salada."},
				{Name: "Lanche da Tarde", Description: "Iogurte grego com nozes e mel."},
				{Name: "Jantar", Description: "Salmão assado com batata doce e aspargos."},
			}},
		},
	}, nil
}

// AnalyzeFoodImage returns the canned nutrition estimate after the scan delay.
func (m *mockCoach) AnalyzeFoodImage(ctx context.Context, _ *service.FoodImage) (*entity.FoodAnalysis, error) {
	if err := m.wait(ctx, m.scanDelay); err != nil {
		return nil, err
	}

	return &entity.FoodAnalysis{
		IdentifiedFoods: []string{"Frango Grelhado", "Brócolis", "Arroz Integral"},
		Calories:        550,
		Macros:          entity.Macros{Protein: 45, Carbs: 50, Fat: 15},
		Recommendation:  entity.RecommendationRecommended,
	}, nil
}

// wait sleeps for the simulated latency, aborting when the context ends.
func (m *mockCoach) wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
