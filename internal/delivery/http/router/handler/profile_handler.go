package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"fitbuilder/internal/delivery/http/middleware"
	"fitbuilder/internal/delivery/http/response"
	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/usecase"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// addWeightInput is the request body for weight entries.
type addWeightInput struct {
	Date   string  `json:"date" validate:"required"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// updateHabitsInput is the request body for habit tracker updates.
type updateHabitsInput struct {
	Habits entity.HabitState `json:"habits" validate:"required"`
}

// Get returns the full profile aggregate.
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	profile, err := h.uc.Get(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Replace overwrites the full profile aggregate.
func (h *ProfileHandler) Replace(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	profile := new(entity.UserProfile)
	if err := c.Bind(profile); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile payload")
	}

	if err := h.uc.Replace(c.Request().Context(), accountID, profile); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// CompleteOnboarding stores the questionnaire answers.
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	data := new(entity.OnboardingData)
	if err := c.Bind(data); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding payload")
	}

	profile, err := h.uc.CompleteOnboarding(c.Request().Context(), accountID, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Onboarding completed")
}

// AddWeight appends a weight measurement.
func (h *ProfileHandler) AddWeight(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	input := new(addWeightInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight payload")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.AddWeightEntry(c.Request().Context(), accountID, entity.WeightEntry{
		Date:   input.Date,
		Weight: input.Weight,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Weight entry recorded")
}

// UpdateHabits replaces the habit tracker state.
func (h *ProfileHandler) UpdateHabits(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated account")
	}

	input := new(updateHabitsInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habits payload")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateHabits(c.Request().Context(), accountID, input.Habits)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Habits updated")
}
