package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gymcore/internal/auth"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/service"
)

// TrainerHandler handles trainer profile endpoints.
type TrainerHandler struct {
	svc service.TrainerService
}

// NewTrainerHandler creates a new trainer handler.
func NewTrainerHandler(svc service.TrainerService) *TrainerHandler {
	return &TrainerHandler{svc: svc}
}

// CreateTrainerRequest represents a trainer profile creation. UserID defaults
// to the authenticated caller when omitted.
type CreateTrainerRequest struct {
	UserID         *uint   `json:"user_id,omitempty"`
	Specialization string  `json:"specialization" validate:"required"`
	Certifications *string `json:"certifications,omitempty"`
}

// UpdateTrainerRequest represents a trainer profile update.
type UpdateTrainerRequest struct {
	Specialization string  `json:"specialization" validate:"required"`
	Certifications *string `json:"certifications,omitempty"`
}

// Create godoc
// @Summary Create a trainer profile
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTrainerRequest true "Trainer data"
// @Success 201 {object} model.Trainer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /trainer [post]
func (h *TrainerHandler) Create(c echo.Context) error {
	var req CreateTrainerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	userID := uint(0)
	if req.UserID != nil {
		userID = *req.UserID
	} else if claims := auth.ClaimsFromContext(c); claims != nil {
		userID = claims.UserID
	}

	trainer, err := h.svc.Create(c.Request().Context(), userID, req.Specialization, req.Certifications)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, trainer)
}

// List godoc
// @Summary List trainers with user details
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Trainer
// @Router /trainer [get]
func (h *TrainerHandler) List(c echo.Context) error {
	trainers, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, trainers)
}

// Get godoc
// @Summary Get a trainer by id
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID"
// @Success 200 {object} model.Trainer
// @Failure 404 {object} errors.ErrorResponse
// @Router /trainer/{id} [get]
func (h *TrainerHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	trainer, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, trainer)
}

// Update godoc
// @Summary Update a trainer profile
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID"
// @Param request body UpdateTrainerRequest true "Trainer data"
// @Success 200 {object} model.Trainer
// @Failure 404 {object} errors.ErrorResponse
// @Router /trainer/{id} [put]
func (h *TrainerHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	var req UpdateTrainerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	trainer, err := h.svc.Update(c.Request().Context(), uint(id), req.Specialization, req.Certifications)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, trainer)
}

// Delete godoc
// @Summary Delete a trainer
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /trainer/{id} [delete]
func (h *TrainerHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "trainer deleted successfully"})
}
