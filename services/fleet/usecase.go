package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/carpool/services/fleet FleetUC

// FleetUC is the fleet usecase interface: brands, vehicle models, vehicles.
type FleetUC interface {
	CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error)
	ListBrands(ctx context.Context) ([]*models.Brand, error)

	CreateVehicle(ctx context.Context, callerID uuid.UUID, req *models.CreateVehicleRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, q models.PaginationQuery) ([]*models.Vehicle, int, error)
	UpdateVehicle(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID, req *models.CreateVehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) error
}
