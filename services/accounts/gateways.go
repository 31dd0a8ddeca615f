package accounts

import (
	"context"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ridepool/carpool/services/accounts AccountGW

// AccountGW publishes account domain events. Publishing is best-effort:
// callers log failures and never surface them.
type AccountGW interface {
	DriverRegistered(ctx context.Context, event *models.DriverEvent) error
}
