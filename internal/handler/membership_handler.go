package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gymcore/internal/errors"
	"gymcore/internal/service"
)

// MembershipHandler handles membership endpoints.
type MembershipHandler struct {
	svc service.MembershipService
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(svc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// CreateMembershipRequest represents a create-or-extend request.
type CreateMembershipRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	PlanID uint `json:"plan_id" validate:"required"`
}

// ChangePlanRequest represents a plan change for an existing membership.
type ChangePlanRequest struct {
	PlanID uint `json:"plan_id" validate:"required"`
}

// Create godoc
// @Summary Create or extend a membership
// @Description Updates the user's most recent membership to the plan with recomputed dates, inserting a new row when none exists.
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMembershipRequest true "User and plan"
// @Success 201 {object} model.Membership
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /membership [post]
func (h *MembershipHandler) Create(c echo.Context) error {
	var req CreateMembershipRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	m, err := h.svc.CreateOrExtend(c.Request().Context(), req.UserID, req.PlanID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// ChangePlan godoc
// @Summary Change a user's plan
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body ChangePlanRequest true "New plan"
// @Success 200 {object} model.Membership
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /membership/{userId}/plan [put]
func (h *MembershipHandler) ChangePlan(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid user id"))
	}

	var req ChangePlanRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, apperrors.NewValidationError(err.Error()))
	}

	m, err := h.svc.ChangePlan(c.Request().Context(), uint(userID), req.PlanID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// List godoc
// @Summary List memberships with plan data
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Membership
// @Router /membership [get]
func (h *MembershipHandler) List(c echo.Context) error {
	memberships, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, memberships)
}

// Get godoc
// @Summary Get a membership by id
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Success 200 {object} model.Membership
// @Failure 404 {object} errors.ErrorResponse
// @Router /membership/{id} [get]
func (h *MembershipHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	m, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Current godoc
// @Summary Get a user's current membership
// @Description Returns the most recent membership row. Status reflects the last write; compare expiry_date against today for expiry.
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} model.Membership
// @Failure 404 {object} errors.ErrorResponse
// @Router /membership/user/{userId} [get]
func (h *MembershipHandler) Current(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid user id"))
	}

	m, err := h.svc.CurrentForUser(c.Request().Context(), uint(userID))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Cancel godoc
// @Summary Cancel a membership
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /membership/{id} [delete]
func (h *MembershipHandler) Cancel(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.NewValidationError("invalid id"))
	}

	if err := h.svc.Cancel(c.Request().Context(), uint(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "membership cancelled successfully",
	})
}
