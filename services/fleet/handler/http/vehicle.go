package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/fleet"
)

// VehicleHandler handles HTTP requests for vehicle operations.
type VehicleHandler struct {
	fleetUC fleet.FleetUC
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(fleetUC fleet.FleetUC) *VehicleHandler {
	return &VehicleHandler{fleetUC: fleetUC}
}

// CreateVehicle registers a vehicle for the calling driver
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	vehicle, err := h.fleetUC.CreateVehicle(c.Request().Context(), accountID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "vehicle created", vehicle)
}

// GetVehicle returns one vehicle by ID
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id", nil)
	}

	vehicle, err := h.fleetUC.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "vehicle retrieved", vehicle)
}

// ListVehicles returns a page of vehicles
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	q := utils.ParsePagination(c)

	vehicles, total, err := h.fleetUC.ListVehicles(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "vehicles retrieved", models.Paginated{
		Data: vehicles,
		Meta: models.NewPaginationMeta(q, total),
	})
}

// UpdateVehicle updates a vehicle owned by the caller
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := utils.RoleFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id", nil)
	}

	var req models.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	vehicle, err := h.fleetUC.UpdateVehicle(c.Request().Context(), accountID, role, id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "vehicle updated", vehicle)
}

// DeleteVehicle removes a vehicle owned by the caller
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := utils.RoleFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id", nil)
	}

	if err := h.fleetUC.DeleteVehicle(c.Request().Context(), accountID, role, id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}
