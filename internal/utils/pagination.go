package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/models"
)

// ParsePagination reads page/limit query parameters, applying defaults and
// clamping limit to the maximum.
func ParsePagination(c echo.Context) models.PaginationQuery {
	page := models.DefaultPage
	limit := models.DefaultLimit

	if raw := c.QueryParam("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}

	return models.PaginationQuery{Page: page, Limit: limit}
}
