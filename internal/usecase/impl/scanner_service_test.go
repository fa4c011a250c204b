package impl

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbuilder/internal/domain/entity"
	domainerrors "fitbuilder/internal/domain/errors"
	"fitbuilder/internal/domain/service"
	"fitbuilder/internal/infra/coach"
	"fitbuilder/internal/usecase"
)

// fakeAnalyzer returns a fixed analysis or error.
type fakeAnalyzer struct {
	analysis *entity.FoodAnalysis
	err      error
}

func (f fakeAnalyzer) AnalyzeFoodImage(context.Context, *service.FoodImage) (*entity.FoodAnalysis, error) {
	return f.analysis, f.err
}

func newScannerUsecase(analyzer service.FoodAnalyzer) usecase.ScannerUsecase {
	return NewScannerService(ScannerServiceParams{
		Analyzer: analyzer,
		Logger:   newTestLogger(),
	})
}

func validImageInput() *usecase.AnalyzeFoodInput {
	return &usecase.AnalyzeFoodInput{
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes")),
		MimeType:    "image/jpeg",
	}
}

func TestScannerService_AnalyzeFood(t *testing.T) {
	scannerUC := newScannerUsecase(coach.NewMockCoach(time.Millisecond, time.Millisecond))

	analysis, err := scannerUC.AnalyzeFood(context.Background(), validImageInput())
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.IdentifiedFoods)
	assert.Positive(t, analysis.Calories)
	assert.True(t, analysis.Recommendation.Valid())
}

func TestScannerService_RejectsNonImageMimeType(t *testing.T) {
	scannerUC := newScannerUsecase(coach.NewMockCoach(time.Millisecond, time.Millisecond))

	input := validImageInput()
	input.MimeType = "application/pdf"

	_, err := scannerUC.AnalyzeFood(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestScannerService_RejectsInvalidBase64(t *testing.T) {
	scannerUC := newScannerUsecase(coach.NewMockCoach(time.Millisecond, time.Millisecond))

	input := validImageInput()
	input.ImageBase64 = "not base64!!!"

	_, err := scannerUC.AnalyzeFood(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestScannerService_AnalyzerFailure(t *testing.T) {
	scannerUC := newScannerUsecase(fakeAnalyzer{err: assert.AnError})

	_, err := scannerUC.AnalyzeFood(context.Background(), validImageInput())
	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
}

func TestScannerService_RejectsUnknownRecommendation(t *testing.T) {
	scannerUC := newScannerUsecase(fakeAnalyzer{analysis: &entity.FoodAnalysis{
		IdentifiedFoods: []string{"Pizza"},
		Calories:        800,
		Recommendation:  entity.Recommendation("Talvez"),
	}})

	_, err := scannerUC.AnalyzeFood(context.Background(), validImageInput())
	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
}
