package bookings

import (
	"context"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ridepool/carpool/services/bookings BookingGW

// BookingGW publishes booking domain events.
type BookingGW interface {
	BookingCreated(ctx context.Context, event *models.BookingEvent) error
	BookingCancelled(ctx context.Context, event *models.BookingEvent) error
}
