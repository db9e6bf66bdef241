package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gymcore/internal/auth"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/service"
)

// ClassHandler handles class endpoints. Mutations resolve the owning trainer
// from the verified token claims, never from the request body.
type ClassHandler struct {
	svc service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(svc service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// ClassRequest represents class fields for create and update.
type ClassRequest struct {
	Name         string    `json:"name" validate:"required"`
	ScheduleTime time.Time `json:"schedule_time" validate:"required"`
	Capacity     int       `json:"capacity,omitempty"`
}

func callerID(c echo.Context) (uint, error) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		return 0, apperrors.ErrMissingToken
	}
	return claims.UserID, nil
}

// Create godoc
// @Summary Create a class owned by the calling trainer
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClassRequest true "Class data"
// @Success 201 {object} model.Class
// @Failure 400 {object} errors.ErrorResponse
// @Router /class [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req ClassRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	trainerID, err := callerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	class, err := h.svc.Create(c.Request().Context(), trainerID, service.ClassInput{
		Name:         req.Name,
		ScheduleTime: req.ScheduleTime,
		Capacity:     req.Capacity,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, class)
}

// List godoc
// @Summary List classes with trainer names
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Class
// @Router /class [get]
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, classes)
}

// Get godoc
// @Summary Get a class by id
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} model.Class
// @Failure 404 {object} errors.ErrorResponse
// @Router /class/{id} [get]
func (h *ClassHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	class, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, class)
}

// ListByTrainer godoc
// @Summary List a trainer's classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer user ID"
// @Success 200 {array} model.Class
// @Router /class/trainer/{id} [get]
func (h *ClassHandler) ListByTrainer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	classes, err := h.svc.ListByTrainer(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, classes)
}

// Update godoc
// @Summary Update a class owned by the calling trainer
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body ClassRequest true "Class data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /class/{id} [put]
func (h *ClassHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	var req ClassRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	trainerID, err := callerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	if err := h.svc.Update(c.Request().Context(), uint(id), trainerID, service.ClassInput{
		Name:         req.Name,
		ScheduleTime: req.ScheduleTime,
		Capacity:     req.Capacity,
	}); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "class updated"})
}

// Delete godoc
// @Summary Delete a class owned by the calling trainer
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /class/{id} [delete]
func (h *ClassHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	trainerID, err := callerID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id), trainerID); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "class deleted"})
}
