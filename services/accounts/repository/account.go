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

// AccountRepo is the PostgreSQL implementation of accounts.AccountRepo.
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates the account repository.
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// CreateAccount inserts the account and its profile in one transaction.
func (r *AccountRepo) CreateAccount(ctx context.Context, account *models.Account, profile *models.Profile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO accounts (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ref
	`
	err = tx.QueryRowxContext(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Role,
		account.CreatedAt, account.UpdatedAt,
	).Scan(&account.Ref)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.EmailTaken(account.Email)
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	profile.AccountRef = account.Ref
	query = `
		INSERT INTO profiles (id, account_ref, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ref
	`
	err = tx.QueryRowxContext(ctx, query,
		profile.ID, profile.AccountRef, profile.FirstName, profile.LastName, profile.Phone,
	).Scan(&profile.Ref)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAccountByEmail retrieves an account by email.
func (r *AccountRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT ref, id, email, password_hash, role, created_at, updated_at, deleted_at
		FROM accounts
		WHERE email = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.AccountNotFound(email)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetAccountByID retrieves an account by external ID.
func (r *AccountRepo) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT ref, id, email, password_hash, role, created_at, updated_at, deleted_at
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.AccountNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetProfileByAccountID retrieves the profile owned by an account.
func (r *AccountRepo) GetProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT p.ref, p.id, p.account_ref, p.first_name, p.last_name, p.phone, p.deleted_at
		FROM profiles p
		JOIN accounts a ON a.ref = p.account_ref
		WHERE a.id = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ProfileNotFound(accountID.String())
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile updates the profile's display fields.
func (r *AccountRepo) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, phone = $3
		WHERE ref = $4
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.FirstName, profile.LastName, profile.Phone, profile.Ref)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// AnonymizeAccount blanks identifying fields on the account and profile and
// sets the soft-delete markers. Rows are never removed.
func (r *AccountRepo) AnonymizeAccount(ctx context.Context, accountID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	query := `
		UPDATE accounts
		SET email = 'deleted+' || id || '@anonymized.invalid',
			password_hash = '',
			updated_at = $1,
			deleted_at = $1
		WHERE id = $2
		RETURNING ref
	`
	var accountRef int64
	if err := tx.QueryRowxContext(ctx, query, now, accountID).Scan(&accountRef); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.AccountNotFound(accountID.String())
		}
		return fmt.Errorf("failed to anonymize account: %w", err)
	}

	query = `
		UPDATE profiles
		SET first_name = '', last_name = '', phone = '', deleted_at = $1
		WHERE account_ref = $2
	`
	if _, err := tx.ExecContext(ctx, query, now, accountRef); err != nil {
		return fmt.Errorf("failed to anonymize profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
