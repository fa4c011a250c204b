package service

import (
	"context"

	"fitbuilder/internal/domain/entity"
)

// PlanGenerator produces workout and diet plans from onboarding answers.
// Implementations are asynchronous behind a blocking call: the mock provider
// resolves after a simulated latency, the real provider performs a network
// round-trip. Both honor context cancellation.
type PlanGenerator interface {
	GenerateWorkoutPlan(ctx context.Context, onboarding *entity.OnboardingData) (*entity.WorkoutPlan, error)
	GenerateDietPlan(ctx context.Context, onboarding *entity.OnboardingData) (*entity.DietPlan, error)
}

// FoodImage is an encoded photo handed to the analyzer.
type FoodImage struct {
	Base64Data string
	MimeType   string
}

// FoodAnalyzer estimates the nutrition content of a food photo.
type FoodAnalyzer interface {
	AnalyzeFoodImage(ctx context.Context, image *FoodImage) (*entity.FoodAnalysis, error)
}
