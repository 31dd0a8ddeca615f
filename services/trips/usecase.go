package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/carpool/services/trips TripUC

// TripUC is the trip usecase interface. Trip mutation is reserved to the
// owning driver; there is no ADMIN override on trips.
type TripUC interface {
	CreateTrip(ctx context.Context, callerID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, q models.PaginationQuery) ([]*models.Trip, int, error)
	SearchTrips(ctx context.Context, filter models.TripSearchFilter, q models.PaginationQuery) ([]*models.Trip, int, error)
	UpdateTrip(ctx context.Context, callerID uuid.UUID, id uuid.UUID, req *models.UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error
}
