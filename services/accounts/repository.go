package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/carpool/services/accounts AccountRepo

// AccountRepo is the account storage interface. Lookups for absent rows
// return the matching apperrors sentinel, never (nil, nil).
type AccountRepo interface {
	CreateAccount(ctx context.Context, account *models.Account, profile *models.Profile) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)

	GetProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error

	// AnonymizeAccount blanks identifying fields and sets the soft-delete
	// marker; the rows are retained.
	AnonymizeAccount(ctx context.Context, accountID uuid.UUID) error

	GetDriverByAccountID(ctx context.Context, accountID uuid.UUID) (*models.DriverProfile, error)
	CreateDriverProfile(ctx context.Context, profileRef int64, licenseNumber string) (*models.DriverProfile, error)
	UpdateAccountRole(ctx context.Context, accountRef int64, role string) error
}
