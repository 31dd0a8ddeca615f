package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/carpool/services/accounts AccountUC

// AccountUC is the account usecase interface.
type AccountUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateProfileRequest) (*models.Profile, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error

	// RegisterDriver is the become-a-driver action.
	RegisterDriver(ctx context.Context, accountID uuid.UUID, req *models.RegisterDriverRequest) (*models.DriverProfile, error)
}
