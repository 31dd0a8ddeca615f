package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/trips"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip publishes a trip for the calling driver
func (h *TripHandler) CreateTrip(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), accountID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "trip published", trip)
}

// GetTrip returns one trip by ID
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid trip id", nil)
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip retrieved", trip)
}

// ListTrips returns a page of trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	q := utils.ParsePagination(c)

	items, total, err := h.tripUC.ListTrips(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trips retrieved", models.Paginated{
		Data: items,
		Meta: models.NewPaginationMeta(q, total),
	})
}

// SearchTrips returns the trips matching the optional, ANDed filters
func (h *TripHandler) SearchTrips(c echo.Context) error {
	q := utils.ParsePagination(c)

	filter := models.TripSearchFilter{
		DepartureCity: c.QueryParam("departure"),
		ArrivalCity:   c.QueryParam("arrival"),
	}
	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid date, expected YYYY-MM-DD", nil)
		}
		filter.Date = &date
	}

	items, total, err := h.tripUC.SearchTrips(c.Request().Context(), filter, q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trips retrieved", models.Paginated{
		Data: items,
		Meta: models.NewPaginationMeta(q, total),
	})
}

// UpdateTrip updates a trip owned by the caller
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid trip id", nil)
	}

	var req models.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), accountID, id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip updated", trip)
}

// DeleteTrip deletes a trip owned by the caller
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid trip id", nil)
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), accountID, id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}
