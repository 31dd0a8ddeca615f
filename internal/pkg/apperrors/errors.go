// Package apperrors defines the typed errors returned by usecases for
// expected business outcomes. Anything that is not an *AppError is treated
// as a storage or programming fault and surfaced as a 500 at the boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a business outcome with a stable code and an HTTP status.
type AppError struct {
	Code    string
	Status  int
	Message string
	Details map[string]string
}

func (e *AppError) Error() string {
	return e.Message
}

// As unwraps err into an *AppError if it is one.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsCode reports whether err is an *AppError with the given code.
func IsCode(err error, code string) bool {
	ae, ok := As(err)
	return ok && ae.Code == code
}

// Error codes surfaced to clients.
const (
	CodeTripNotFound        = "TRIP_NOT_FOUND"
	CodeDriverNotFound      = "DRIVER_NOT_FOUND"
	CodeBrandNotFound       = "BRAND_NOT_FOUND"
	CodeVehicleNotFound     = "VEHICLE_NOT_FOUND"
	CodeInscriptionNotFound = "INSCRIPTION_NOT_FOUND"
	CodeProfileNotFound     = "PROFILE_NOT_FOUND"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeAlreadyInscribed    = "ALREADY_INSCRIBED"
	CodeNoSeatsAvailable    = "NO_SEATS_AVAILABLE"
	CodeSeatsBooked         = "SEATS_BOOKED"
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeDriverExists        = "DRIVER_EXISTS"
	CodeBrandExists         = "BRAND_EXISTS"
	CodeForbidden           = "FORBIDDEN"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeValidation          = "VALIDATION_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
)

func TripNotFound(id string) *AppError {
	return &AppError{Code: CodeTripNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("trip %s not found", id)}
}

func DriverNotFound(accountID string) *AppError {
	return &AppError{Code: CodeDriverNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("no driver profile for user %s", accountID)}
}

func BrandNotFound(name string) *AppError {
	return &AppError{Code: CodeBrandNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("brand %s not found", name)}
}

func VehicleNotFound(id string) *AppError {
	return &AppError{Code: CodeVehicleNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("vehicle %s not found", id)}
}

func InscriptionNotFound(id string) *AppError {
	return &AppError{Code: CodeInscriptionNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("inscription %s not found", id)}
}

func ProfileNotFound(accountID string) *AppError {
	return &AppError{Code: CodeProfileNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("no profile for user %s", accountID)}
}

func AccountNotFound(id string) *AppError {
	return &AppError{Code: CodeAccountNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("account %s not found", id)}
}

func AlreadyInscribed() *AppError {
	return &AppError{Code: CodeAlreadyInscribed, Status: http.StatusConflict, Message: "rider already holds an active booking for this trip"}
}

func NoSeatsAvailable() *AppError {
	return &AppError{Code: CodeNoSeatsAvailable, Status: http.StatusConflict, Message: "no seats available on this trip"}
}

func SeatsBooked(active int) *AppError {
	return &AppError{Code: CodeSeatsBooked, Status: http.StatusConflict, Message: fmt.Sprintf("cannot reduce seats below the %d active bookings", active)}
}

func EmailTaken(email string) *AppError {
	return &AppError{Code: CodeEmailTaken, Status: http.StatusConflict, Message: fmt.Sprintf("email %s is already registered", email)}
}

func DriverExists() *AppError {
	return &AppError{Code: CodeDriverExists, Status: http.StatusConflict, Message: "user already has a driver profile"}
}

func BrandExists(name string) *AppError {
	return &AppError{Code: CodeBrandExists, Status: http.StatusConflict, Message: fmt.Sprintf("brand %s already exists", name)}
}

func Forbidden(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{Code: CodeForbidden, Status: http.StatusForbidden, Message: message}
}

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

func Validation(details map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Status: http.StatusBadRequest, Message: "invalid request", Details: details}
}
