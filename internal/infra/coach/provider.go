// Package coach provides the plan generation and food analysis capabilities
// behind the domain service seams. The mock provider resolves canned data
// after a simulated latency; the gemini provider calls the remote generation
// backend over HTTP.
package coach

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitbuilder/config"
	"fitbuilder/internal/domain/service"
)

// Provider names accepted in the coach.provider config key.
const (
	ProviderMock   = "mock"
	ProviderGemini = "gemini"
)

// Params holds dependencies for the coach provider, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Coach bundles both capability seams; every provider implements both.
type Coach interface {
	service.PlanGenerator
	service.FoodAnalyzer
}

// New creates a Coach based on configuration. An absent coach section
// defaults to the mock provider so the application runs without any
// credentials.
func New(params Params) (Coach, error) {
	cfg := params.Config.Coach
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderMock {
		planDelay := 1500 * time.Millisecond
		scanDelay := 2 * time.Second
		if cfg != nil && cfg.PlanDelay > 0 {
			planDelay = cfg.PlanDelay
		}
		if cfg != nil && cfg.ScanDelay > 0 {
			scanDelay = cfg.ScanDelay
		}

		logger.Info("Using mock coach provider",
			slog.Duration("planDelay", planDelay),
			slog.Duration("scanDelay", scanDelay),
		)

		return NewMockCoach(planDelay, scanDelay), nil
	}

	if cfg.Provider == ProviderGemini {
		if cfg.Gemini == nil || cfg.Gemini.APIKey == "" {
			return nil, errors.New("gemini api key is required for the gemini provider")
		}

		logger.Info("Using gemini coach provider", slog.String("model", cfg.Gemini.Model))

		return NewGeminiCoach(cfg.Gemini, logger), nil
	}

	return nil, errors.Errorf("unknown coach provider: %s", cfg.Provider)
}

// NewPlanGenerator exposes the configured Coach as the PlanGenerator seam.
func NewPlanGenerator(coach Coach) service.PlanGenerator {
	return coach
}

// NewFoodAnalyzer exposes the configured Coach as the FoodAnalyzer seam.
func NewFoodAnalyzer(coach Coach) service.FoodAnalyzer {
	return coach
}
