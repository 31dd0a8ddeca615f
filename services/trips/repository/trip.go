package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
)

// TripRepo implements trips.TripRepo over PostgreSQL.
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates the trip repository.
func NewTripRepo(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

const tripColumns = `
	t.ref, t.id, t.driver_ref, t.vehicle_ref,
	d.id AS driver_id, v.id AS vehicle_id,
	t.departure_at, t.distance_km, t.seats, t.created_at, t.updated_at
`

const tripJoins = `
	FROM trips t
	JOIN driver_profiles d ON d.ref = t.driver_ref
	JOIN vehicles v ON v.ref = t.vehicle_ref
`

// CreateTrip inserts the trip and its two typed city associations in one
// transaction.
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip, departureCityRef, arrivalCityRef int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertTrip := `
		INSERT INTO trips (id, driver_ref, vehicle_ref, departure_at, distance_km, seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ref
	`
	err = tx.QueryRowxContext(ctx, insertTrip,
		trip.ID, trip.DriverRef, trip.VehicleRef,
		trip.DepartureAt, trip.DistanceKm, trip.Seats,
		trip.CreatedAt, trip.UpdatedAt,
	).Scan(&trip.Ref)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	insertCity := `INSERT INTO trip_cities (trip_ref, city_ref, kind) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, insertCity, trip.Ref, departureCityRef, models.CityKindDeparture); err != nil {
		return fmt.Errorf("failed to insert departure city: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertCity, trip.Ref, arrivalCityRef, models.CityKindArrival); err != nil {
		return fmt.Errorf("failed to insert arrival city: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trip: %w", err)
	}
	return nil
}

// GetTripByID retrieves a trip with its city associations.
func (r *TripRepo) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + tripJoins + ` WHERE t.id = $1`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.TripNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	if err := r.loadCities(ctx, []*models.Trip{&trip}); err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListTrips returns a page of trips ordered by departure time.
func (r *TripRepo) ListTrips(ctx context.Context, limit, offset int) ([]*models.Trip, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM trips`); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	query := `SELECT ` + tripColumns + tripJoins + ` ORDER BY t.departure_at LIMIT $1 OFFSET $2`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}

	if err := r.loadCities(ctx, trips); err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

// SearchTrips returns the trips matching the ANDed filter criteria: exact
// departure city name, exact arrival city name, and departure within the
// given UTC calendar day.
func (r *TripRepo) SearchTrips(ctx context.Context, filter models.TripSearchFilter, limit, offset int) ([]*models.Trip, int, error) {
	joins := tripJoins + `
		JOIN trip_cities tcd ON tcd.trip_ref = t.ref AND tcd.kind = '` + models.CityKindDeparture + `'
		JOIN cities cd ON cd.ref = tcd.city_ref
		JOIN trip_cities tca ON tca.trip_ref = t.ref AND tca.kind = '` + models.CityKindArrival + `'
		JOIN cities ca ON ca.ref = tca.city_ref
	`

	conditions := []string{}
	args := []interface{}{}
	if filter.DepartureCity != "" {
		args = append(args, filter.DepartureCity)
		conditions = append(conditions, fmt.Sprintf("cd.name = $%d", len(args)))
	}
	if filter.ArrivalCity != "" {
		args = append(args, filter.ArrivalCity)
		conditions = append(conditions, fmt.Sprintf("ca.name = $%d", len(args)))
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		args = append(args, day)
		conditions = append(conditions, fmt.Sprintf("t.departure_at >= $%d", len(args)))
		args = append(args, day.Add(24*time.Hour))
		conditions = append(conditions, fmt.Sprintf("t.departure_at < $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*)` + joins + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count matching trips: %w", err)
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	query := `SELECT ` + tripColumns + joins + where +
		fmt.Sprintf(" ORDER BY t.departure_at LIMIT $%d OFFSET $%d", limitPos, limitPos+1)

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to search trips: %w", err)
	}

	if err := r.loadCities(ctx, trips); err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

// UpdateTrip updates the mutable trip fields. The trip row is locked the
// same way bookings lock it, so the active-booking count cannot race with a
// concurrent seat grab: the seat count never drops below the bookings
// already held.
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current int
	lockTrip := `SELECT seats FROM trips WHERE ref = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &current, lockTrip, trip.Ref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.TripNotFound(trip.ID.String())
		}
		return fmt.Errorf("failed to lock trip: %w", err)
	}

	var active int
	countActive := `SELECT COUNT(*) FROM inscriptions WHERE trip_ref = $1 AND status = $2`
	if err := tx.GetContext(ctx, &active, countActive, trip.Ref, models.InscriptionActive); err != nil {
		return fmt.Errorf("failed to count active bookings: %w", err)
	}
	if trip.Seats < active {
		return apperrors.SeatsBooked(active)
	}

	update := `
		UPDATE trips
		SET departure_at = $1, distance_km = $2, seats = $3, updated_at = $4
		WHERE ref = $5
	`
	if _, err := tx.ExecContext(ctx, update,
		trip.DepartureAt, trip.DistanceKm, trip.Seats, trip.UpdatedAt, trip.Ref); err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trip update: %w", err)
	}
	return nil
}

// DeleteTrip removes a trip row; city associations and inscriptions go with
// it through ON DELETE CASCADE.
func (r *TripRepo) DeleteTrip(ctx context.Context, ref int64) error {
	query := `DELETE FROM trips WHERE ref = $1`
	if _, err := r.db.ExecContext(ctx, query, ref); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

// tripCityRow is the scan target for city association loads.
type tripCityRow struct {
	TripRef    int64     `db:"trip_ref"`
	Kind       string    `db:"kind"`
	Ref        int64     `db:"ref"`
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	PostalCode string    `db:"postal_code"`
}

// loadCities attaches the typed city associations to the given trips with
// a single query.
func (r *TripRepo) loadCities(ctx context.Context, trips []*models.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	refs := make([]int64, 0, len(trips))
	byRef := make(map[int64]*models.Trip, len(trips))
	for _, t := range trips {
		refs = append(refs, t.Ref)
		byRef[t.Ref] = t
	}

	query, args, err := sqlx.In(`
		SELECT tc.trip_ref, tc.kind, c.ref, c.id, c.name, c.postal_code
		FROM trip_cities tc
		JOIN cities c ON c.ref = tc.city_ref
		WHERE tc.trip_ref IN (?)
	`, refs)
	if err != nil {
		return fmt.Errorf("failed to build city query: %w", err)
	}
	query = r.db.Rebind(query)

	rows := []tripCityRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to load trip cities: %w", err)
	}

	for _, row := range rows {
		trip, ok := byRef[row.TripRef]
		if !ok {
			continue
		}
		city := &models.City{Ref: row.Ref, ID: row.ID, Name: row.Name, PostalCode: row.PostalCode}
		switch row.Kind {
		case models.CityKindDeparture:
			trip.Departure = city
		case models.CityKindArrival:
			trip.Arrival = city
		}
	}
	return nil
}
