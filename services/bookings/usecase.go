package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/carpool/services/bookings BookingUC

// BookingUC is the booking usecase interface.
type BookingUC interface {
	CreateInscription(ctx context.Context, callerID uuid.UUID, req *models.CreateInscriptionRequest) (*models.Inscription, error)
	CancelInscription(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) error
	ListPassengers(ctx context.Context, tripID uuid.UUID, q models.PaginationQuery) ([]*models.Inscription, int, error)
}
