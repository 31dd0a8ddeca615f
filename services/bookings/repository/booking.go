package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
)

const uniqueViolation = "23505"

// BookingRepo implements bookings.BookingRepo over PostgreSQL.
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates the booking repository.
func NewBookingRepo(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateInscription books one seat in a single transaction. The trip row is
// locked first, so the duplicate check and the capacity count cannot race
// with a concurrent booking of the same trip. The duplicate check runs
// before the capacity check: a rider who already holds a seat on a full
// trip gets ALREADY_INSCRIBED, not NO_SEATS_AVAILABLE. A partial unique
// index on (trip_ref, profile_ref) WHERE status = 'ACTIVE' backstops the
// duplicate check.
func (r *BookingRepo) CreateInscription(ctx context.Context, tripID uuid.UUID, profileRef int64) (*models.Inscription, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var trip struct {
		Ref   int64     `db:"ref"`
		ID    uuid.UUID `db:"id"`
		Seats int       `db:"seats"`
	}
	lockTrip := `SELECT ref, id, seats FROM trips WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &trip, lockTrip, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.TripNotFound(tripID.String())
		}
		return nil, fmt.Errorf("failed to lock trip: %w", err)
	}

	var existing int
	duplicateCheck := `
		SELECT COUNT(*) FROM inscriptions
		WHERE trip_ref = $1 AND profile_ref = $2 AND status = $3
	`
	if err := tx.GetContext(ctx, &existing, duplicateCheck, trip.Ref, profileRef, models.InscriptionActive); err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if existing > 0 {
		return nil, apperrors.AlreadyInscribed()
	}

	var active int
	capacityCheck := `
		SELECT COUNT(*) FROM inscriptions
		WHERE trip_ref = $1 AND status = $2
	`
	if err := tx.GetContext(ctx, &active, capacityCheck, trip.Ref, models.InscriptionActive); err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	if active >= trip.Seats {
		return nil, apperrors.NoSeatsAvailable()
	}

	var riderID uuid.UUID
	if err := tx.GetContext(ctx, &riderID, `SELECT id FROM profiles WHERE ref = $1`, profileRef); err != nil {
		return nil, fmt.Errorf("failed to resolve rider: %w", err)
	}

	inscription := &models.Inscription{
		ID:         uuid.New(),
		TripRef:    trip.Ref,
		ProfileRef: profileRef,
		TripID:     trip.ID,
		RiderID:    riderID,
		Status:     models.InscriptionActive,
		CreatedAt:  time.Now(),
	}
	insert := `
		INSERT INTO inscriptions (id, trip_ref, profile_ref, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ref
	`
	err = tx.QueryRowxContext(ctx, insert,
		inscription.ID, inscription.TripRef, inscription.ProfileRef,
		inscription.Status, inscription.CreatedAt,
	).Scan(&inscription.Ref)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.AlreadyInscribed()
		}
		return nil, fmt.Errorf("failed to insert inscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}
	return inscription, nil
}

// GetInscriptionByID retrieves an inscription with its joined trip and
// rider IDs.
func (r *BookingRepo) GetInscriptionByID(ctx context.Context, id uuid.UUID) (*models.Inscription, error) {
	query := `
		SELECT i.ref, i.id, i.trip_ref, i.profile_ref,
		       t.id AS trip_id, p.id AS rider_id,
		       p.first_name || ' ' || p.last_name AS rider_name,
		       i.status, i.created_at
		FROM inscriptions i
		JOIN trips t ON t.ref = i.trip_ref
		JOIN profiles p ON p.ref = i.profile_ref
		WHERE i.id = $1
	`

	var inscription models.Inscription
	err := r.db.GetContext(ctx, &inscription, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.InscriptionNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to get inscription: %w", err)
	}
	return &inscription, nil
}

// CancelInscription flips the inscription status to CANCELLED. The row is
// kept; the partial unique index only covers ACTIVE rows, so the rider can
// book the same trip again afterwards.
func (r *BookingRepo) CancelInscription(ctx context.Context, ref int64) error {
	query := `UPDATE inscriptions SET status = $1 WHERE ref = $2`
	if _, err := r.db.ExecContext(ctx, query, models.InscriptionCancelled, ref); err != nil {
		return fmt.Errorf("failed to cancel inscription: %w", err)
	}
	return nil
}

// ListPassengers returns a page of the trip's active inscriptions with the
// total count. An unknown trip fails with TripNotFound rather than an
// empty page.
func (r *BookingRepo) ListPassengers(ctx context.Context, tripID uuid.UUID, limit, offset int) ([]*models.Inscription, int, error) {
	var tripRef int64
	err := r.db.GetContext(ctx, &tripRef, `SELECT ref FROM trips WHERE id = $1`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, apperrors.TripNotFound(tripID.String())
		}
		return nil, 0, fmt.Errorf("failed to get trip: %w", err)
	}

	var total int
	count := `SELECT COUNT(*) FROM inscriptions WHERE trip_ref = $1 AND status = $2`
	if err := r.db.GetContext(ctx, &total, count, tripRef, models.InscriptionActive); err != nil {
		return nil, 0, fmt.Errorf("failed to count passengers: %w", err)
	}

	query := `
		SELECT i.ref, i.id, i.trip_ref, i.profile_ref,
		       t.id AS trip_id, p.id AS rider_id,
		       p.first_name || ' ' || p.last_name AS rider_name,
		       i.status, i.created_at
		FROM inscriptions i
		JOIN trips t ON t.ref = i.trip_ref
		JOIN profiles p ON p.ref = i.profile_ref
		WHERE i.trip_ref = $1 AND i.status = $2
		ORDER BY i.created_at
		LIMIT $3 OFFSET $4
	`

	passengers := []*models.Inscription{}
	if err := r.db.SelectContext(ctx, &passengers, query, tripRef, models.InscriptionActive, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list passengers: %w", err)
	}
	return passengers, total, nil
}
