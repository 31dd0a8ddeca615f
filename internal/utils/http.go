package utils

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/logger"
)

// Response is the success envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody carries the error payload of a failure envelope.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse sends a success envelope with data.
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NoContentResponse sends an empty 204 response.
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// ErrorResponseHandler sends a failure envelope with an explicit code.
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	})
}

// AppErrorResponse maps an error from a usecase to the failure envelope.
// Expected business outcomes carry their own code and status; anything else
// is a storage or programming fault logged in full and surfaced as a bare 500.
func AppErrorResponse(c echo.Context, err error) error {
	if ae, ok := apperrors.As(err); ok {
		return c.JSON(ae.Status, ErrorResponse{
			Success: false,
			Error:   ErrorBody{Code: ae.Code, Message: ae.Message, Details: ae.Details},
		})
	}

	logger.Error("unexpected error",
		logger.String("path", c.Request().URL.Path),
		logger.String("method", c.Request().Method),
		logger.ErrorField(err))
	return ErrorResponseHandler(c, http.StatusInternalServerError, apperrors.CodeInternal, "internal server error")
}

// BadRequestResponse sends a 400 validation failure with field details.
func BadRequestResponse(c echo.Context, message string, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: apperrors.CodeValidation, Message: message, Details: details},
	})
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, message)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, apperrors.CodeForbidden, message)
}

// UserIDFromContext returns the authenticated account ID set by the JWT
// middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// RoleFromContext returns the authenticated role set by the JWT middleware.
func RoleFromContext(c echo.Context) (string, bool) {
	role, ok := c.Get("user_role").(string)
	return role, ok
}
