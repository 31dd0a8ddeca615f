package trips

import (
	"context"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ridepool/carpool/services/trips TripGW

// TripGW publishes trip domain events.
type TripGW interface {
	TripPublished(ctx context.Context, event *models.TripEvent) error
	TripDeleted(ctx context.Context, event *models.TripEvent) error
}
