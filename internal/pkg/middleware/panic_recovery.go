package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/utils"
)

// PanicRecoveryMiddleware converts panics into 500 responses and logs the
// stack trace server-side. Clients never see internal detail.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())))

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError,
						apperrors.CodeInternal, "internal server error")
				}
			}()
			return next(c)
		}
	}
}
