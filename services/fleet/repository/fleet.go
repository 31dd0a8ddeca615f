package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
)

const uniqueViolation = "23505"

// FleetRepo implements fleet.FleetRepo over PostgreSQL.
type FleetRepo struct {
	db *sqlx.DB
}

// NewFleetRepo creates the fleet repository.
func NewFleetRepo(db *sqlx.DB) *FleetRepo {
	return &FleetRepo{db: db}
}

// CreateBrand inserts a brand. Brand names are unique.
func (r *FleetRepo) CreateBrand(ctx context.Context, brand *models.Brand) error {
	query := `
		INSERT INTO brands (id, name)
		VALUES ($1, $2)
		RETURNING ref
	`
	err := r.db.QueryRowxContext(ctx, query, brand.ID, brand.Name).Scan(&brand.Ref)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.BrandExists(brand.Name)
		}
		return fmt.Errorf("failed to insert brand: %w", err)
	}
	return nil
}

// ListBrands returns all brands ordered by name.
func (r *FleetRepo) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	query := `SELECT ref, id, name FROM brands ORDER BY name`

	brands := []*models.Brand{}
	if err := r.db.SelectContext(ctx, &brands, query); err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// GetBrandByName retrieves a brand by case-insensitive name.
func (r *FleetRepo) GetBrandByName(ctx context.Context, name string) (*models.Brand, error) {
	query := `SELECT ref, id, name FROM brands WHERE LOWER(name) = LOWER($1)`

	var brand models.Brand
	err := r.db.GetContext(ctx, &brand, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.BrandNotFound(name)
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return &brand, nil
}

// GetBrandByID retrieves a brand by external ID.
func (r *FleetRepo) GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	query := `SELECT ref, id, name FROM brands WHERE id = $1`

	var brand models.Brand
	err := r.db.GetContext(ctx, &brand, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.BrandNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return &brand, nil
}

// FindOrCreateModel returns the model with the given name under the brand,
// creating it on first use. A concurrent insert of the same (name, brand)
// loses on the unique constraint and falls back to the existing row.
func (r *FleetRepo) FindOrCreateModel(ctx context.Context, name string, brandRef int64) (*models.VehicleModel, error) {
	model, err := r.getModel(ctx, name, brandRef)
	if err == nil {
		return model, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get vehicle model: %w", err)
	}

	created := &models.VehicleModel{
		ID:       uuid.New(),
		Name:     name,
		BrandRef: brandRef,
	}
	query := `
		INSERT INTO vehicle_models (id, name, brand_ref)
		VALUES ($1, $2, $3)
		RETURNING ref
	`
	err = r.db.QueryRowxContext(ctx, query, created.ID, created.Name, created.BrandRef).Scan(&created.Ref)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			model, err = r.getModel(ctx, name, brandRef)
			if err != nil {
				return nil, fmt.Errorf("failed to reread vehicle model: %w", err)
			}
			return model, nil
		}
		return nil, fmt.Errorf("failed to insert vehicle model: %w", err)
	}
	return created, nil
}

func (r *FleetRepo) getModel(ctx context.Context, name string, brandRef int64) (*models.VehicleModel, error) {
	query := `SELECT ref, id, name, brand_ref FROM vehicle_models WHERE name = $1 AND brand_ref = $2`

	var model models.VehicleModel
	if err := r.db.GetContext(ctx, &model, query, name, brandRef); err != nil {
		return nil, err
	}
	return &model, nil
}

// CreateVehicle inserts a vehicle.
func (r *FleetRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, plate, model_ref, driver_ref)
		VALUES ($1, $2, $3, $4)
		RETURNING ref
	`
	err := r.db.QueryRowxContext(ctx, query,
		vehicle.ID, vehicle.Plate, vehicle.ModelRef, vehicle.DriverRef,
	).Scan(&vehicle.Ref)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

// GetVehicleByID retrieves a vehicle with its joined model and brand names.
func (r *FleetRepo) GetVehicleByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT v.ref, v.id, v.plate, v.model_ref, v.driver_ref,
		       m.name AS model_name, b.name AS brand_name
		FROM vehicles v
		JOIN vehicle_models m ON m.ref = v.model_ref
		JOIN brands b ON b.ref = m.brand_ref
		WHERE v.id = $1
	`

	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.VehicleNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListVehicles returns a page of vehicles with the total count.
func (r *FleetRepo) ListVehicles(ctx context.Context, limit, offset int) ([]*models.Vehicle, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM vehicles`); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	query := `
		SELECT v.ref, v.id, v.plate, v.model_ref, v.driver_ref,
		       m.name AS model_name, b.name AS brand_name
		FROM vehicles v
		JOIN vehicle_models m ON m.ref = v.model_ref
		JOIN brands b ON b.ref = m.brand_ref
		ORDER BY v.ref
		LIMIT $1 OFFSET $2
	`

	vehicles := []*models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, total, nil
}

// UpdateVehicle updates the plate and model of a vehicle.
func (r *FleetRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate = $1, model_ref = $2
		WHERE ref = $3
	`
	_, err := r.db.ExecContext(ctx, query, vehicle.Plate, vehicle.ModelRef, vehicle.Ref)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// DeleteVehicle removes a vehicle row.
func (r *FleetRepo) DeleteVehicle(ctx context.Context, ref int64) error {
	query := `DELETE FROM vehicles WHERE ref = $1`
	if _, err := r.db.ExecContext(ctx, query, ref); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
