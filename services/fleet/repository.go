package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/carpool/services/fleet FleetRepo,DriverResolver

// FleetRepo is the fleet storage interface. Lookups for absent rows return
// the matching apperrors sentinel, never (nil, nil).
type FleetRepo interface {
	CreateBrand(ctx context.Context, brand *models.Brand) error
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	// GetBrandByName matches case-insensitively.
	GetBrandByName(ctx context.Context, name string) (*models.Brand, error)
	GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)

	FindOrCreateModel(ctx context.Context, name string, brandRef int64) (*models.VehicleModel, error)

	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, limit, offset int) ([]*models.Vehicle, int, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, ref int64) error
}

// DriverResolver resolves the caller's driver profile. Implemented by the
// accounts repository; fleet only needs this one lookup.
type DriverResolver interface {
	GetDriverByAccountID(ctx context.Context, accountID uuid.UUID) (*models.DriverProfile, error)
}
