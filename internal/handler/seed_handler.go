package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymcore/internal/service"
)

// SeedHandler handles reference-data seeding.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedDefaultsResponse represents the seed response.
type SeedDefaultsResponse struct {
	Message string `json:"message"`
	Roles   int    `json:"roles"`
	Plans   int    `json:"plans"`
}

// SeedDefaults godoc
// @Summary Seed role tiers and the default plan catalogue
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDefaultsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/defaults [get]
func (h *SeedHandler) SeedDefaults(c echo.Context) error {
	roles, plans, err := h.seedService.SeedDefaults(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, SeedDefaultsResponse{
		Message: "reference data seeded successfully",
		Roles:   roles,
		Plans:   plans,
	})
}
