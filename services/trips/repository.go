package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/carpool/services/trips TripRepo,CityRepo,DriverResolver,VehicleResolver

// TripRepo is the trip storage interface. Lookups for absent rows return
// the matching apperrors sentinel, never (nil, nil). Loaded trips carry
// their typed city associations.
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip, departureCityRef, arrivalCityRef int64) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, limit, offset int) ([]*models.Trip, int, error)
	SearchTrips(ctx context.Context, filter models.TripSearchFilter, limit, offset int) ([]*models.Trip, int, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, ref int64) error
}

// CityRepo finds or creates cities referenced by name in trip payloads.
type CityRepo interface {
	FindOrCreateByName(ctx context.Context, name string) (*models.City, error)
}

// DriverResolver resolves the caller's driver profile. Implemented by the
// accounts repository.
type DriverResolver interface {
	GetDriverByAccountID(ctx context.Context, accountID uuid.UUID) (*models.DriverProfile, error)
}

// VehicleResolver resolves a vehicle by external ID. Implemented by the
// fleet repository.
type VehicleResolver interface {
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
}
