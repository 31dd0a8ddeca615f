package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
)

// RequireRole gates a route on the role hierarchy USER < DRIVER < ADMIN.
// When several roles are declared the threshold is the minimum level among
// them: the least-privileged role in the list wins. A missing identity is
// 401; a known identity below the threshold is 403. This guard is necessary
// but not sufficient: per-resource ownership checks live in the usecases.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	threshold := 0
	for _, role := range roles {
		level := models.RoleLevel(role)
		if threshold == 0 || level < threshold {
			threshold = level
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := utils.RoleFromContext(c)
			if !ok || role == "" {
				return utils.UnauthorizedResponse(c, "missing role in identity")
			}

			if models.RoleLevel(role) < threshold {
				return utils.ForbiddenResponse(c, "insufficient role")
			}

			return next(c)
		}
	}
}
