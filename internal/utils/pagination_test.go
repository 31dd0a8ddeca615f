package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ridepool/carpool/internal/pkg/models"
)

func paginationContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/trips?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParsePagination_Defaults(t *testing.T) {
	q := ParsePagination(paginationContext(t, ""))
	assert.Equal(t, models.DefaultPage, q.Page)
	assert.Equal(t, models.DefaultLimit, q.Limit)
	assert.Equal(t, 0, q.Offset())
}

func TestParsePagination_ClampsLimit(t *testing.T) {
	q := ParsePagination(paginationContext(t, "page=3&limit=500"))
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, models.MaxLimit, q.Limit)
	assert.Equal(t, 200, q.Offset())
}

func TestParsePagination_IgnoresGarbage(t *testing.T) {
	q := ParsePagination(paginationContext(t, "page=-1&limit=abc"))
	assert.Equal(t, models.DefaultPage, q.Page)
	assert.Equal(t, models.DefaultLimit, q.Limit)
}

func TestNewPaginationMeta(t *testing.T) {
	meta := models.NewPaginationMeta(models.PaginationQuery{Page: 2, Limit: 20}, 41)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 41, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
