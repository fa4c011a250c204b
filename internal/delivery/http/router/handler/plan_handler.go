package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fitbuilder/internal/delivery/http/middleware"
	"fitbuilder/internal/delivery/http/response"
	"fitbuilder/internal/usecase"
)

// PlanHandler holds dependencies for plan generation handlers.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{uc: uc, logger: logger}
}

// GenerateWorkout generates and persists the weekly workout plan.
func (h *PlanHandler) GenerateWorkout(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	plan, err := h.uc.GenerateWorkoutPlan(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Workout plan generated")
}

// GenerateDiet generates and persists the weekly diet plan.
func (h *PlanHandler) GenerateDiet(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	plan, err := h.uc.GenerateDietPlan(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Diet plan generated")
}
