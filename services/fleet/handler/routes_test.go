package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	httpHandler "github.com/ridepool/carpool/services/fleet/handler/http"
)

func TestRegisterRoutes_VehicleUpdateAcceptsPutAndPatch(t *testing.T) {
	e := echo.New()
	h := NewHandler(httpHandler.NewBrandHandler(nil), httpHandler.NewVehicleHandler(nil))
	noopMW := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	h.RegisterRoutes(e, noopMW)

	methods := map[string]bool{}
	for _, r := range e.Routes() {
		if r.Path == "/vehicles/:id" {
			methods[r.Method] = true
		}
	}

	assert.True(t, methods[http.MethodGet])
	assert.True(t, methods[http.MethodPut])
	assert.True(t, methods[http.MethodPatch])
	assert.True(t, methods[http.MethodDelete])
}
