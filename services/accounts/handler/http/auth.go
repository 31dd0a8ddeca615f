package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/accounts"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	accountUC accounts.AccountUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC accounts.AccountUC) *AuthHandler {
	return &AuthHandler{accountUC: accountUC}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	resp, err := h.accountUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("account registered",
		logger.String("account_id", resp.UserID.String()),
		logger.String("email", utils.MaskEmail(req.Email)))

	return utils.SuccessResponse(c, http.StatusCreated, "account created", resp)
}

// Login handles authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	resp, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "authenticated", resp)
}
