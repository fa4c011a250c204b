package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fitbuilder/config"
	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/service"
)

// geminiCoach is the production implementation of the coaching seam. It asks
// the remote generation backend for structured JSON and decodes it into the
// domain types. Callers cannot tell it apart from the mock provider beyond
// latency and content.
type geminiCoach struct {
	cfg        *config.GeminiConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeminiCoach creates the HTTP-backed coach.
func NewGeminiCoach(cfg *config.GeminiConfig, logger *slog.Logger) Coach {
	timeout := 30 * time.Second
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &geminiCoach{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// generateRequest mirrors the generateContent wire format.
type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateWorkoutPlan asks the backend for a weekly workout plan.
func (g *geminiCoach) GenerateWorkoutPlan(ctx context.Context, onboarding *entity.OnboardingData) (*entity.WorkoutPlan, error) {
	prompt, err := planPrompt("um plano de treino semanal", onboarding)
	if err != nil {
		return nil, err
	}

	plan := new(entity.WorkoutPlan)
	if err := g.generate(ctx, []generatePart{{Text: prompt}}, plan); err != nil {
		return nil, err
	}
	if len(plan.WeeklyPlan) == 0 {
		return nil, errors.New("generation returned an empty weekly plan")
	}

	return plan, nil
}

// GenerateDietPlan asks the backend for a weekly diet plan with macro targets.
func (g *geminiCoach) GenerateDietPlan(ctx context.Context, onboarding *entity.OnboardingData) (*entity.DietPlan, error) {
	prompt, err := planPrompt("um plano de dieta semanal com calorias diárias e macros", onboarding)
	if err != nil {
		return nil, err
	}

	plan := new(entity.DietPlan)
	if err := g.generate(ctx, []generatePart{{Text: prompt}}, plan); err != nil {
		return nil, err
	}
	if len(plan.WeeklyPlan) == 0 {
		return nil, errors.New("generation returned an empty weekly plan")
	}

	return plan, nil
}

// AnalyzeFoodImage sends the encoded photo for a nutrition estimate.
func (g *geminiCoach) AnalyzeFoodImage(ctx context.Context, image *service.FoodImage) (*entity.FoodAnalysis, error) {
	parts := []generatePart{
		{Text: "Analise a foto do alimento e responda em JSON com identifiedFoods, calories, macros e recommendation (Recomendada, Aceitável ou Não Recomendada)."},
		{InlineData: &inlineData{MimeType: image.MimeType, Data: image.Base64Data}},
	}

	analysis := new(entity.FoodAnalysis)
	if err := g.generate(ctx, parts, analysis); err != nil {
		return nil, err
	}
	if !analysis.Recommendation.Valid() {
		return nil, errors.Errorf("analysis returned unknown recommendation %q", analysis.Recommendation)
	}

	return analysis, nil
}

// generate performs one generateContent round-trip and decodes the first
// candidate's text as JSON into out.
func (g *geminiCoach) generate(ctx context.Context, parts []generatePart, out any) error {
	body, err := json.Marshal(generateRequest{Contents: []generateContent{{Parts: parts}}})
	if err != nil {
		return errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.cfg.Endpoint, g.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.cfg.APIKey)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	g.logger.Info("[Coach] Calling generation backend",
		slog.String("model", g.cfg.Model),
		slog.String("request_id", requestID),
	)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "generation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warn("[Coach] Generation backend returned error",
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", requestID),
			slog.String("body", string(payload)),
		)

		return errors.Errorf("generation backend returned status %d", resp.StatusCode)
	}

	decoded := new(generateResponse)
	if err := json.NewDecoder(resp.Body).Decode(decoded); err != nil {
		return errors.Wrap(err, "failed to decode generation response")
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return errors.New("generation response contained no candidates")
	}

	text := decoded.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return errors.Wrap(err, "generation candidate was not valid JSON")
	}

	return nil
}

// planPrompt renders the onboarding answers into the generation prompt.
func planPrompt(subject string, onboarding *entity.OnboardingData) (string, error) {
	answers, err := json.Marshal(onboarding)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf(
		"Com base nas respostas do questionário a seguir, gere %s em JSON. Respostas: %s",
		subject, string(answers),
	), nil
}
