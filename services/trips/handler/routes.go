package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/middleware"
	"github.com/ridepool/carpool/internal/pkg/models"
	httpHandler "github.com/ridepool/carpool/services/trips/handler/http"
)

// Handler coordinates the trip service's HTTP handlers.
type Handler struct {
	tripHandler *httpHandler.TripHandler
}

// NewHandler creates and initializes the trip handlers.
func NewHandler(tripHandler *httpHandler.TripHandler) *Handler {
	return &Handler{tripHandler: tripHandler}
}

// RegisterRoutes registers the trip routes. Reads are open to any
// authenticated user; publishing and mutation require a DRIVER.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	tripGroup := e.Group("/trips", authMW)
	tripGroup.GET("", h.tripHandler.ListTrips, middleware.RequireRole(models.RoleUser))
	tripGroup.GET("/search", h.tripHandler.SearchTrips, middleware.RequireRole(models.RoleUser))
	tripGroup.GET("/:id", h.tripHandler.GetTrip, middleware.RequireRole(models.RoleUser))
	tripGroup.POST("", h.tripHandler.CreateTrip, middleware.RequireRole(models.RoleDriver))
	tripGroup.PUT("/:id", h.tripHandler.UpdateTrip, middleware.RequireRole(models.RoleDriver))
	tripGroup.DELETE("/:id", h.tripHandler.DeleteTrip, middleware.RequireRole(models.RoleDriver))
}
