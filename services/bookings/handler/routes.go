package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/middleware"
	"github.com/ridepool/carpool/internal/pkg/models"
	httpHandler "github.com/ridepool/carpool/services/bookings/handler/http"
)

// Handler coordinates the booking service's HTTP handlers.
type Handler struct {
	bookingHandler *httpHandler.BookingHandler
}

// NewHandler creates and initializes the booking handlers.
func NewHandler(bookingHandler *httpHandler.BookingHandler) *Handler {
	return &Handler{bookingHandler: bookingHandler}
}

// RegisterRoutes registers the booking routes.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	protected := e.Group("", authMW, middleware.RequireRole(models.RoleUser))

	protected.POST("/inscriptions", h.bookingHandler.CreateInscription)
	protected.DELETE("/inscriptions/:id", h.bookingHandler.CancelInscription)
	protected.GET("/trips/:id/passengers", h.bookingHandler.ListPassengers)
}
