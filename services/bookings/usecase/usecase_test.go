package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/services/bookings/mocks"
)

type bookingMocks struct {
	repo     *mocks.MockBookingRepo
	profiles *mocks.MockProfileResolver
	gw       *mocks.MockBookingGW
}

func setupBookingUC(t *testing.T) (*BookingUC, bookingMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		repo:     mocks.NewMockBookingRepo(ctrl),
		profiles: mocks.NewMockProfileResolver(ctrl),
		gw:       mocks.NewMockBookingGW(ctrl),
	}
	uc := NewBookingUC(m.repo, m.profiles, m.gw)
	return uc, m, ctrl
}

func TestCreateInscription_Success(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	tripID := uuid.New()
	inscription := &models.Inscription{
		Ref:    40,
		ID:     uuid.New(),
		TripID: tripID,
		Status: models.InscriptionActive,
	}

	m.profiles.EXPECT().GetProfileByAccountID(gomock.Any(), callerID).
		Return(&models.Profile{Ref: 7}, nil)
	m.repo.EXPECT().CreateInscription(gomock.Any(), tripID, int64(7)).
		Return(inscription, nil)
	m.gw.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.CreateInscription(context.Background(), callerID, &models.CreateInscriptionRequest{TripID: tripID})

	require.NoError(t, err)
	assert.Equal(t, inscription, got)
}

func TestCreateInscription_FullTrip(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	tripID := uuid.New()

	m.profiles.EXPECT().GetProfileByAccountID(gomock.Any(), callerID).
		Return(&models.Profile{Ref: 7}, nil)
	m.repo.EXPECT().CreateInscription(gomock.Any(), tripID, int64(7)).
		Return(nil, apperrors.NoSeatsAvailable())

	_, err := uc.CreateInscription(context.Background(), callerID, &models.CreateInscriptionRequest{TripID: tripID})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeNoSeatsAvailable))
}

func TestCreateInscription_DuplicateIsNotRetried(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	tripID := uuid.New()

	m.profiles.EXPECT().GetProfileByAccountID(gomock.Any(), callerID).
		Return(&models.Profile{Ref: 7}, nil)
	// Exactly one attempt: business outcomes are not retryable.
	m.repo.EXPECT().CreateInscription(gomock.Any(), tripID, int64(7)).
		Times(1).
		Return(nil, apperrors.AlreadyInscribed())

	_, err := uc.CreateInscription(context.Background(), callerID, &models.CreateInscriptionRequest{TripID: tripID})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyInscribed))
}

func TestCancelInscription_RiderSucceeds(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	inscriptionID := uuid.New()
	inscription := &models.Inscription{
		Ref:        40,
		ID:         inscriptionID,
		ProfileRef: 7,
		Status:     models.InscriptionActive,
	}

	m.repo.EXPECT().GetInscriptionByID(gomock.Any(), inscriptionID).Return(inscription, nil)
	m.profiles.EXPECT().GetProfileByAccountID(gomock.Any(), callerID).
		Return(&models.Profile{Ref: 7}, nil)
	m.repo.EXPECT().CancelInscription(gomock.Any(), int64(40)).Return(nil)
	m.gw.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.CancelInscription(context.Background(), callerID, models.RoleUser, inscriptionID)

	require.NoError(t, err)
}

func TestCancelInscription_OtherRiderForbidden(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	inscriptionID := uuid.New()

	m.repo.EXPECT().GetInscriptionByID(gomock.Any(), inscriptionID).
		Return(&models.Inscription{Ref: 40, ProfileRef: 99, Status: models.InscriptionActive}, nil)
	m.profiles.EXPECT().GetProfileByAccountID(gomock.Any(), callerID).
		Return(&models.Profile{Ref: 7}, nil)

	err := uc.CancelInscription(context.Background(), callerID, models.RoleUser, inscriptionID)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestCancelInscription_AdminBypassesOwnership(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	inscriptionID := uuid.New()

	m.repo.EXPECT().GetInscriptionByID(gomock.Any(), inscriptionID).
		Return(&models.Inscription{Ref: 40, ProfileRef: 99, Status: models.InscriptionActive}, nil)
	m.repo.EXPECT().CancelInscription(gomock.Any(), int64(40)).Return(nil)
	m.gw.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.CancelInscription(context.Background(), uuid.New(), models.RoleAdmin, inscriptionID)

	require.NoError(t, err)
}

func TestCancelInscription_AlreadyCancelledIsNoOp(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	inscriptionID := uuid.New()

	m.repo.EXPECT().GetInscriptionByID(gomock.Any(), inscriptionID).
		Return(&models.Inscription{Ref: 40, ProfileRef: 7, Status: models.InscriptionCancelled}, nil)
	m.profiles.EXPECT().GetProfileByAccountID(gomock.Any(), callerID).
		Return(&models.Profile{Ref: 7}, nil)

	err := uc.CancelInscription(context.Background(), callerID, models.RoleUser, inscriptionID)

	require.NoError(t, err)
}

func TestCreateInscription_MissingTripID(t *testing.T) {
	uc, _, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateInscription(context.Background(), uuid.New(), &models.CreateInscriptionRequest{})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}
