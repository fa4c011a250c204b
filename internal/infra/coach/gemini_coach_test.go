package coach

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbuilder/config"
	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/service"
)

// capturedRequest records what the coach sent to the fake backend.
type capturedRequest struct {
	Path      string
	APIKey    string
	RequestID string
	Body      string
}

// newGenerationBackend fakes the generateContent endpoint, answering every
// request with the given candidate text.
func newGenerationBackend(t *testing.T, candidateText string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := new(capturedRequest)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		captured.Path = r.URL.Path
		captured.APIKey = r.Header.Get("X-Goog-Api-Key")
		captured.RequestID = r.Header.Get("X-Request-Id")
		captured.Body = string(body)

		response := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]any{{"text": candidateText}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func newTestGeminiCoach(endpoint string) Coach {
	cfg := &config.GeminiConfig{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash",
		Endpoint: endpoint,
	}

	return NewGeminiCoach(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGeminiCoach_GenerateWorkoutPlan(t *testing.T) {
	candidate := `{"weeklyPlan":[{"day":"Segunda-feira","exercises":[{"name":"Supino Reto","sets":"4","reps":"8-12"}]}]}`
	server, captured := newGenerationBackend(t, candidate)
	coach := newTestGeminiCoach(server.URL)

	plan, err := coach.GenerateWorkoutPlan(context.Background(), &entity.OnboardingData{Goal: "Hipertrofia"})
	require.NoError(t, err)

	require.Len(t, plan.WeeklyPlan, 1)
	assert.Equal(t, "Supino Reto", plan.WeeklyPlan[0].Exercises[0].Name)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", captured.Path)
	assert.Equal(t, "test-key", captured.APIKey)
	assert.NotEmpty(t, captured.RequestID)

	// The questionnaire answers travel inside the prompt.
	assert.Contains(t, captured.Body, "Hipertrofia")
}

func TestGeminiCoach_GenerateWorkoutPlanRejectsEmptyPlan(t *testing.T) {
	server, _ := newGenerationBackend(t, `{"weeklyPlan":[]}`)
	coach := newTestGeminiCoach(server.URL)

	_, err := coach.GenerateWorkoutPlan(context.Background(), &entity.OnboardingData{})
	assert.Error(t, err)
}

func TestGeminiCoach_GenerateDietPlan(t *testing.T) {
	candidate := `{"dailyCalories":2000,"macros":{"protein":150,"carbs":220,"fat":55},"weeklyPlan":[{"day":"Todos os dias","meals":[{"name":"Almoço","description":"Frango com arroz."}]}]}`
	server, _ := newGenerationBackend(t, candidate)
	coach := newTestGeminiCoach(server.URL)

	plan, err := coach.GenerateDietPlan(context.Background(), &entity.OnboardingData{})
	require.NoError(t, err)

	assert.Equal(t, 2000, plan.DailyCalories)
	assert.Equal(t, entity.Macros{Protein: 150, Carbs: 220, Fat: 55}, plan.Macros)
	require.Len(t, plan.WeeklyPlan, 1)
}

func TestGeminiCoach_AnalyzeFoodImage(t *testing.T) {
	candidate := `{"identifiedFoods":["Salada"],"calories":320,"macros":{"protein":12,"carbs":30,"fat":14},"recommendation":"Aceitável"}`
	server, captured := newGenerationBackend(t, candidate)
	coach := newTestGeminiCoach(server.URL)

	analysis, err := coach.AnalyzeFoodImage(context.Background(), &service.FoodImage{
		Base64Data: "aGVsbG8=",
		MimeType:   "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Salada"}, analysis.IdentifiedFoods)
	assert.Equal(t, entity.RecommendationAcceptable, analysis.Recommendation)

	// The photo rides along as inline data.
	assert.Contains(t, captured.Body, `"inline_data"`)
	assert.Contains(t, captured.Body, "aGVsbG8=")
}

func TestGeminiCoach_AnalyzeFoodImageRejectsUnknownRecommendation(t *testing.T) {
	candidate := `{"identifiedFoods":["Pizza"],"calories":800,"recommendation":"Talvez"}`
	server, _ := newGenerationBackend(t, candidate)
	coach := newTestGeminiCoach(server.URL)

	_, err := coach.AnalyzeFoodImage(context.Background(), &service.FoodImage{Base64Data: "aGVsbG8=", MimeType: "image/png"})
	assert.Error(t, err)
}

func TestGeminiCoach_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)
	coach := newTestGeminiCoach(server.URL)

	_, err := coach.GenerateWorkoutPlan(context.Background(), &entity.OnboardingData{})
	assert.Error(t, err)
}

func TestGeminiCoach_NonJSONCandidate(t *testing.T) {
	server, _ := newGenerationBackend(t, "desculpe, não consegui gerar o plano")
	coach := newTestGeminiCoach(server.URL)

	_, err := coach.GenerateWorkoutPlan(context.Background(), &entity.OnboardingData{})
	assert.Error(t, err)
}
