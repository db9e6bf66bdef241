package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymcore/internal/service"
)

// PlanHandler serves plan reference data.
type PlanHandler struct {
	svc service.PlanService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(svc service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// List godoc
// @Summary List plans ordered by duration
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Plan
// @Router /plan [get]
func (h *PlanHandler) List(c echo.Context) error {
	plans, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}
