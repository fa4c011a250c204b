// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitbuilder/internal/domain/entity"
	domainerrors "fitbuilder/internal/domain/errors"
	"fitbuilder/internal/domain/service"
	"fitbuilder/internal/usecase"
)

// scannerService implements the ScannerUsecase interface.
type scannerService struct {
	analyzer service.FoodAnalyzer
	logger   *slog.Logger
}

// ScannerServiceParams holds dependencies for scannerService, injected by Fx.
type ScannerServiceParams struct {
	fx.In

	Analyzer service.FoodAnalyzer
	Logger   *slog.Logger
}

// NewScannerService is the constructor for scannerService.
func NewScannerService(params ScannerServiceParams) usecase.ScannerUsecase {
	return &scannerService{
		analyzer: params.Analyzer,
		logger:   params.Logger,
	}
}

// AnalyzeFood validates the encoded photo and runs it through the analysis
// capability. A malformed analyzer response is a generation failure, the only
// error state modeled end-to-end for the capability seam.
func (srv *scannerService) AnalyzeFood(ctx context.Context, input *usecase.AnalyzeFoodInput) (*entity.FoodAnalysis, error) {
	if !strings.HasPrefix(input.MimeType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("mime type is not an image")
	}
	if _, err := base64.StdEncoding.DecodeString(input.ImageBase64); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image is not valid base64")
	}

	srv.logger.Info("Analyzing food image", slog.String("mimeType", input.MimeType))

	analysis, err := srv.analyzer.AnalyzeFoodImage(ctx, &service.FoodImage{
		Base64Data: input.ImageBase64,
		MimeType:   input.MimeType,
	})
	if err != nil {
		srv.logger.Error("Food analysis failed", slog.Any("error", err))

		return nil, domainerrors.ErrGenerationFailed.WrapMessage(err.Error())
	}

	if !analysis.Recommendation.Valid() {
		srv.logger.Error("Food analysis returned unknown recommendation",
			slog.String("recommendation", string(analysis.Recommendation)),
		)

		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, "analysis returned unknown recommendation")
	}

	return analysis, nil
}
