package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/fleet"
)

// BrandHandler handles HTTP requests for brand operations.
type BrandHandler struct {
	fleetUC fleet.FleetUC
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(fleetUC fleet.FleetUC) *BrandHandler {
	return &BrandHandler{fleetUC: fleetUC}
}

// CreateBrand creates a brand (ADMIN only, enforced by the route group)
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var req models.CreateBrandRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	brand, err := h.fleetUC.CreateBrand(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "brand created", brand)
}

// ListBrands returns all brands
func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.fleetUC.ListBrands(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "brands retrieved", brands)
}
