package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/carpool/internal/pkg/models"
)

// CityRepo implements trips.CityRepo over PostgreSQL.
type CityRepo struct {
	db *sqlx.DB
}

// NewCityRepo creates the city repository.
func NewCityRepo(db *sqlx.DB) *CityRepo {
	return &CityRepo{db: db}
}

// FindOrCreateByName returns the city with the given name, creating it with
// an empty postal code on first use. City names carry no unique constraint;
// a concurrent create of the same name can leave a duplicate row, which is
// tolerated.
func (r *CityRepo) FindOrCreateByName(ctx context.Context, name string) (*models.City, error) {
	query := `SELECT ref, id, name, postal_code FROM cities WHERE name = $1 ORDER BY ref LIMIT 1`

	var city models.City
	err := r.db.GetContext(ctx, &city, query, name)
	if err == nil {
		return &city, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	created := &models.City{
		ID:   uuid.New(),
		Name: name,
	}
	insert := `
		INSERT INTO cities (id, name, postal_code)
		VALUES ($1, $2, $3)
		RETURNING ref
	`
	err = r.db.QueryRowxContext(ctx, insert, created.ID, created.Name, created.PostalCode).Scan(&created.Ref)
	if err != nil {
		return nil, fmt.Errorf("failed to insert city: %w", err)
	}
	return created, nil
}
