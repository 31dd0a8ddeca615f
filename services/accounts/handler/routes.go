package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/middleware"
	"github.com/ridepool/carpool/internal/pkg/models"
	httpHandler "github.com/ridepool/carpool/services/accounts/handler/http"
)

// Handler coordinates the account service's HTTP handlers.
type Handler struct {
	authHandler    *httpHandler.AuthHandler
	accountHandler *httpHandler.AccountHandler
}

// NewHandler creates and initializes the account handlers.
func NewHandler(authHandler *httpHandler.AuthHandler, accountHandler *httpHandler.AccountHandler) *Handler {
	return &Handler{
		authHandler:    authHandler,
		accountHandler: accountHandler,
	}
}

// RegisterRoutes registers the account routes. authMW resolves the bearer
// token; role thresholds are applied per group.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Authenticated routes
	protected := e.Group("", authMW, middleware.RequireRole(models.RoleUser))

	profileGroup := protected.Group("/profiles")
	profileGroup.GET("/me", h.accountHandler.GetProfile)
	profileGroup.PUT("/me", h.accountHandler.UpdateProfile)

	protected.DELETE("/accounts/me", h.accountHandler.DeleteAccount)

	// Become a driver: open to any authenticated USER.
	protected.POST("/drivers", h.accountHandler.RegisterDriver)
}
