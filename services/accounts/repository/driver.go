package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
)

// GetDriverByAccountID retrieves the driver profile for an account.
func (r *AccountRepo) GetDriverByAccountID(ctx context.Context, accountID uuid.UUID) (*models.DriverProfile, error) {
	query := `
		SELECT d.ref, d.id, d.profile_ref, d.license_number, d.created_at
		FROM driver_profiles d
		JOIN profiles p ON p.ref = d.profile_ref
		JOIN accounts a ON a.ref = p.account_ref
		WHERE a.id = $1
	`

	var driver models.DriverProfile
	err := r.db.GetContext(ctx, &driver, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.DriverNotFound(accountID.String())
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return &driver, nil
}

// CreateDriverProfile inserts a driver profile for a profile ref.
func (r *AccountRepo) CreateDriverProfile(ctx context.Context, profileRef int64, licenseNumber string) (*models.DriverProfile, error) {
	driver := &models.DriverProfile{
		ID:            uuid.New(),
		ProfileRef:    profileRef,
		LicenseNumber: licenseNumber,
		CreatedAt:     time.Now(),
	}

	query := `
		INSERT INTO driver_profiles (id, profile_ref, license_number, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ref
	`
	err := r.db.QueryRowxContext(ctx, query,
		driver.ID, driver.ProfileRef, driver.LicenseNumber, driver.CreatedAt,
	).Scan(&driver.Ref)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.DriverExists()
		}
		return nil, fmt.Errorf("failed to insert driver profile: %w", err)
	}
	return driver, nil
}

// UpdateAccountRole updates the account's role.
func (r *AccountRepo) UpdateAccountRole(ctx context.Context, accountRef int64, role string) error {
	query := `
		UPDATE accounts
		SET role = $1, updated_at = $2
		WHERE ref = $3
	`
	_, err := r.db.ExecContext(ctx, query, role, time.Now(), accountRef)
	if err != nil {
		return fmt.Errorf("failed to update account role: %w", err)
	}
	return nil
}
