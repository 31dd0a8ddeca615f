package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/internal/pkg/retry"
	"github.com/ridepool/carpool/services/bookings"
)

// BookingUC implements bookings.BookingUC.
type BookingUC struct {
	bookingRepo bookings.BookingRepo
	profileRepo bookings.ProfileResolver
	bookingGW   bookings.BookingGW
	retrier     *retry.Retrier
}

// NewBookingUC creates the booking usecase. Seat booking retries on
// serialization conflicts from concurrent bookings of the same trip.
func NewBookingUC(bookingRepo bookings.BookingRepo, profileRepo bookings.ProfileResolver, bookingGW bookings.BookingGW) *BookingUC {
	cfg := retry.DefaultConfig()
	cfg.RetryableFunc = retry.SerializationRetryableFunc()
	return &BookingUC{
		bookingRepo: bookingRepo,
		profileRepo: profileRepo,
		bookingGW:   bookingGW,
		retrier:     retry.New(cfg),
	}
}

// CreateInscription books one seat on a trip for the caller. The duplicate
// and capacity checks run inside the storage transaction; a full trip fails
// with NO_SEATS_AVAILABLE and an existing active booking with
// ALREADY_INSCRIBED.
func (u *BookingUC) CreateInscription(ctx context.Context, callerID uuid.UUID, req *models.CreateInscriptionRequest) (*models.Inscription, error) {
	if req.TripID == uuid.Nil {
		return nil, apperrors.Validation(map[string]string{"trip_id": "trip id is required"})
	}

	profile, err := u.profileRepo.GetProfileByAccountID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var inscription *models.Inscription
	err = u.retrier.Execute(ctx, func(ctx context.Context) error {
		var createErr error
		inscription, createErr = u.bookingRepo.CreateInscription(ctx, req.TripID, profile.Ref)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, inscription, false)

	logger.Info("seat booked",
		logger.String("inscription_id", inscription.ID.String()),
		logger.String("trip_id", req.TripID.String()))
	return inscription, nil
}

// CancelInscription flips an inscription to CANCELLED, freeing the seat and
// allowing the rider to book the trip again. Only the rider or an ADMIN may
// cancel. Cancelling an already cancelled inscription is a no-op.
func (u *BookingUC) CancelInscription(ctx context.Context, callerID uuid.UUID, callerRole string, id uuid.UUID) error {
	inscription, err := u.bookingRepo.GetInscriptionByID(ctx, id)
	if err != nil {
		return err
	}

	if callerRole != models.RoleAdmin {
		profile, err := u.profileRepo.GetProfileByAccountID(ctx, callerID)
		if err != nil {
			return err
		}
		if profile.Ref != inscription.ProfileRef {
			return apperrors.Forbidden("inscription does not belong to the caller")
		}
	}

	if inscription.Status == models.InscriptionCancelled {
		return nil
	}

	if err := u.bookingRepo.CancelInscription(ctx, inscription.Ref); err != nil {
		return err
	}

	inscription.Status = models.InscriptionCancelled
	u.publish(ctx, inscription, true)

	logger.Info("booking cancelled", logger.String("inscription_id", id.String()))
	return nil
}

// ListPassengers returns the active inscriptions of a trip.
func (u *BookingUC) ListPassengers(ctx context.Context, tripID uuid.UUID, q models.PaginationQuery) ([]*models.Inscription, int, error) {
	return u.bookingRepo.ListPassengers(ctx, tripID, q.Limit, q.Offset())
}

func (u *BookingUC) publish(ctx context.Context, inscription *models.Inscription, cancelled bool) {
	if u.bookingGW == nil {
		return
	}
	event := &models.BookingEvent{
		InscriptionID: inscription.ID,
		TripID:        inscription.TripID,
		RiderID:       inscription.RiderID,
		Status:        inscription.Status,
		Timestamp:     time.Now(),
	}

	send := u.bookingGW.BookingCreated
	if cancelled {
		send = u.bookingGW.BookingCancelled
	}
	if err := send(ctx, event); err != nil {
		logger.Warn("failed to publish booking event",
			logger.String("inscription_id", inscription.ID.String()),
			logger.ErrorField(err))
	}
}
