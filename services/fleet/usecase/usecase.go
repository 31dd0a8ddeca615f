package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/services/fleet"
)

// FleetUC implements fleet.FleetUC.
type FleetUC struct {
	fleetRepo  fleet.FleetRepo
	driverRepo fleet.DriverResolver
}

// NewFleetUC creates the fleet usecase.
func NewFleetUC(fleetRepo fleet.FleetRepo, driverRepo fleet.DriverResolver) *FleetUC {
	return &FleetUC{
		fleetRepo:  fleetRepo,
		driverRepo: driverRepo,
	}
}

// CreateBrand creates a brand. Reserved to ADMIN at the routing layer.
func (u *FleetUC) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation(map[string]string{"name": "brand name is required"})
	}

	brand := &models.Brand{
		ID:   uuid.New(),
		Name: name,
	}
	if err := u.fleetRepo.CreateBrand(ctx, brand); err != nil {
		return nil, err
	}

	logger.Info("brand created", logger.String("brand_id", brand.ID.String()), logger.String("name", brand.Name))
	return brand, nil
}

// ListBrands returns all brands.
func (u *FleetUC) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	return u.fleetRepo.ListBrands(ctx)
}

// CreateVehicle registers a vehicle for the calling driver. The brand is
// matched by case-insensitive name and never auto-created; the model is
// found or created under that brand.
func (u *FleetUC) CreateVehicle(ctx context.Context, callerID uuid.UUID, req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	details := map[string]string{}
	if strings.TrimSpace(req.Plate) == "" {
		details["plate"] = "plate is required"
	}
	if strings.TrimSpace(req.BrandName) == "" {
		details["brand"] = "brand name is required"
	}
	if strings.TrimSpace(req.ModelName) == "" {
		details["model"] = "model name is required"
	}
	if len(details) > 0 {
		return nil, apperrors.Validation(details)
	}

	driver, err := u.driverRepo.GetDriverByAccountID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	brand, err := u.fleetRepo.GetBrandByName(ctx, strings.TrimSpace(req.BrandName))
	if err != nil {
		return nil, err
	}

	model, err := u.fleetRepo.FindOrCreateModel(ctx, strings.TrimSpace(req.ModelName), brand.Ref)
	if err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		ID:        uuid.New(),
		Plate:     strings.TrimSpace(req.Plate),
		ModelRef:  model.Ref,
		DriverRef: driver.Ref,
		ModelName: model.Name,
		BrandName: brand.Name,
	}
	if err := u.fleetRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("vehicle created",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("driver_id", driver.ID.String()))
	return vehicle, nil
}

// GetVehicle returns one vehicle by external ID.
func (u *FleetUC) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return u.fleetRepo.GetVehicleByID(ctx, id)
}

// ListVehicles returns a page of vehicles with the total count.
func (u *FleetUC) ListVehicles(ctx context.Context, q models.PaginationQuery) ([]*models.Vehicle, int, error) {
	return u.fleetRepo.ListVehicles(ctx, q.Limit, q.Offset())
}

// UpdateVehicle changes a vehicle's plate and model. Only the owning driver
// or an ADMIN may update; the brand is matched by ID at this entry point.
func (u *FleetUC) UpdateVehicle(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID, req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	details := map[string]string{}
	if strings.TrimSpace(req.Plate) == "" {
		details["plate"] = "plate is required"
	}
	if req.BrandID == uuid.Nil {
		details["brand_id"] = "brand id is required"
	}
	if strings.TrimSpace(req.ModelName) == "" {
		details["model"] = "model name is required"
	}
	if len(details) > 0 {
		return nil, apperrors.Validation(details)
	}

	vehicle, err := u.fleetRepo.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.authorizeOwner(ctx, callerID, callerRole, vehicle); err != nil {
		return nil, err
	}

	brand, err := u.fleetRepo.GetBrandByID(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	model, err := u.fleetRepo.FindOrCreateModel(ctx, strings.TrimSpace(req.ModelName), brand.Ref)
	if err != nil {
		return nil, err
	}

	vehicle.Plate = strings.TrimSpace(req.Plate)
	vehicle.ModelRef = model.Ref
	vehicle.ModelName = model.Name
	vehicle.BrandName = brand.Name

	if err := u.fleetRepo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle. Only the owning driver or an ADMIN may
// delete.
func (u *FleetUC) DeleteVehicle(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) error {
	vehicle, err := u.fleetRepo.GetVehicleByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.authorizeOwner(ctx, callerID, callerRole, vehicle); err != nil {
		return err
	}

	if err := u.fleetRepo.DeleteVehicle(ctx, vehicle.Ref); err != nil {
		return err
	}

	logger.Info("vehicle deleted", logger.String("vehicle_id", id.String()))
	return nil
}

// authorizeOwner lets the owning driver or an ADMIN through. An ADMIN is
// not required to hold a driver profile.
func (u *FleetUC) authorizeOwner(ctx context.Context, callerID uuid.UUID, callerRole string, vehicle *models.Vehicle) error {
	if callerRole == models.RoleAdmin {
		return nil
	}

	driver, err := u.driverRepo.GetDriverByAccountID(ctx, callerID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeDriverNotFound) {
			return apperrors.Forbidden("vehicle does not belong to the caller")
		}
		return err
	}
	if driver.Ref != vehicle.DriverRef {
		return apperrors.Forbidden("vehicle does not belong to the caller")
	}
	return nil
}
