package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/carpool/services/bookings BookingRepo,ProfileResolver

// BookingRepo is the booking storage interface. CreateInscription holds the
// duplicate-booking and seat-capacity invariants inside a single
// transaction; callers retry it on serialization conflicts.
type BookingRepo interface {
	CreateInscription(ctx context.Context, tripID uuid.UUID, profileRef int64) (*models.Inscription, error)
	GetInscriptionByID(ctx context.Context, id uuid.UUID) (*models.Inscription, error)
	CancelInscription(ctx context.Context, ref int64) error
	ListPassengers(ctx context.Context, tripID uuid.UUID, limit, offset int) ([]*models.Inscription, int, error)
}

// ProfileResolver resolves the caller's profile. Implemented by the
// accounts repository.
type ProfileResolver interface {
	GetProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Profile, error)
}
