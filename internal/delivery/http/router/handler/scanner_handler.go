package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fitbuilder/internal/delivery/http/response"
	"fitbuilder/internal/usecase"
)

// ScannerHandler holds dependencies for the food scanner handler.
type ScannerHandler struct {
	uc     usecase.ScannerUsecase
	logger *slog.Logger
}

// NewScannerHandler is the constructor for ScannerHandler, injected by Fx.
func NewScannerHandler(uc usecase.ScannerUsecase, logger *slog.Logger) *ScannerHandler {
	return &ScannerHandler{uc: uc, logger: logger}
}

// Analyze estimates the nutrition content of an uploaded food photo.
func (h *ScannerHandler) Analyze(c echo.Context) error {
	input := new(usecase.AnalyzeFoodInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scanner payload")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	analysis, err := h.uc.AnalyzeFood(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analysis, "Image analyzed")
}
