package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/utils"
	"github.com/ridepool/carpool/services/accounts"
)

// AccountHandler handles HTTP requests for profile and driver operations.
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// GetProfile returns the caller's profile
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "profile retrieved", profile)
}

// UpdateProfile updates the caller's profile
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	profile, err := h.accountUC.UpdateProfile(c.Request().Context(), accountID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "profile updated", profile)
}

// DeleteAccount anonymizes the caller's account
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("account anonymized", logger.String("account_id", accountID.String()))
	return utils.NoContentResponse(c)
}

// RegisterDriver handles the become-a-driver action
func (h *AccountHandler) RegisterDriver(c echo.Context) error {
	accountID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload", nil)
	}

	driver, err := h.accountUC.RegisterDriver(c.Request().Context(), accountID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "driver profile created", driver)
}
