package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateInscription books a seat on a trip for the caller
func (h *BookingHandler) CreateInscription(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateInscriptionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	inscription, err := h.bookingUC.CreateInscription(c.Request().Context(), accountID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "seat booked", inscription)
}

// CancelInscription cancels a booking held by the caller
func (h *BookingHandler) CancelInscription(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := utils.RoleFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid inscription id", nil)
	}

	if err := h.bookingUC.CancelInscription(c.Request().Context(), accountID, role, id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

// ListPassengers returns the active bookings of a trip
func (h *BookingHandler) ListPassengers(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid trip id", nil)
	}

	q := utils.ParsePagination(c)
	passengers, total, err := h.bookingUC.ListPassengers(c.Request().Context(), tripID, q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "passengers retrieved", models.Paginated{
		Data: passengers,
		Meta: models.NewPaginationMeta(q, total),
	})
}
