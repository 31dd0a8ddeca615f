package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/middleware"
	"github.com/ridepool/carpool/internal/pkg/models"
	httpHandler "github.com/ridepool/carpool/services/fleet/handler/http"
)

// Handler coordinates the fleet service's HTTP handlers.
type Handler struct {
	brandHandler   *httpHandler.BrandHandler
	vehicleHandler *httpHandler.VehicleHandler
}

// NewHandler creates and initializes the fleet handlers.
func NewHandler(brandHandler *httpHandler.BrandHandler, vehicleHandler *httpHandler.VehicleHandler) *Handler {
	return &Handler{
		brandHandler:   brandHandler,
		vehicleHandler: vehicleHandler,
	}
}

// RegisterRoutes registers the fleet routes.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	brandGroup := e.Group("/brands", authMW)
	brandGroup.GET("", h.brandHandler.ListBrands, middleware.RequireRole(models.RoleUser))
	brandGroup.POST("", h.brandHandler.CreateBrand, middleware.RequireRole(models.RoleAdmin))

	vehicleGroup := e.Group("/vehicles", authMW)
	vehicleGroup.GET("", h.vehicleHandler.ListVehicles, middleware.RequireRole(models.RoleUser))
	vehicleGroup.GET("/:id", h.vehicleHandler.GetVehicle, middleware.RequireRole(models.RoleUser))
	vehicleGroup.POST("", h.vehicleHandler.CreateVehicle, middleware.RequireRole(models.RoleDriver))
	vehicleGroup.PUT("/:id", h.vehicleHandler.UpdateVehicle, middleware.RequireRole(models.RoleDriver))
	vehicleGroup.PATCH("/:id", h.vehicleHandler.UpdateVehicle, middleware.RequireRole(models.RoleDriver))
	vehicleGroup.DELETE("/:id", h.vehicleHandler.DeleteVehicle, middleware.RequireRole(models.RoleDriver))
}
