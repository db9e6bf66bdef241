package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/service"
)

// AttendanceHandler handles attendance endpoints.
type AttendanceHandler struct {
	svc service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// MarkAttendanceRequest represents a new attendance record.
type MarkAttendanceRequest struct {
	UserID  uint      `json:"user_id" validate:"required"`
	ClassID uint      `json:"class_id" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Status  string    `json:"status" validate:"required,oneof=present absent"`
}

// UpdateAttendanceRequest represents an attendance correction.
type UpdateAttendanceRequest struct {
	Date   time.Time `json:"date" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=present absent"`
}

// Mark godoc
// @Summary Mark attendance for a user in a class
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MarkAttendanceRequest true "Attendance data"
// @Success 201 {object} model.Attendance
// @Failure 400 {object} errors.ErrorResponse
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	record, err := h.svc.Mark(c.Request().Context(), req.UserID, req.ClassID, req.Date, req.Status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// List godoc
// @Summary List attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Attendance
// @Router /attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// ListByMember godoc
// @Summary List attendance for one member
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} model.Attendance
// @Router /attendance/member/{id} [get]
func (h *AttendanceHandler) ListByMember(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	records, err := h.svc.ListByUser(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Update godoc
// @Summary Update an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Param request body UpdateAttendanceRequest true "Attendance data"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	var req UpdateAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	if err := h.svc.Update(c.Request().Context(), uint(id), req.Date, req.Status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "attendance updated successfully"})
}

// Delete godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "attendance deleted successfully"})
}
