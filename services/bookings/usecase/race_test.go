package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/services/bookings/mocks"
)

// fakeBookingRepo enforces the duplicate and capacity invariants under a
// mutex, the in-memory equivalent of the row lock the real repository
// takes on the trip.
type fakeBookingRepo struct {
	mu      sync.Mutex
	tripID  uuid.UUID
	seats   int
	nextRef int64
	active  map[int64]bool
}

func newFakeBookingRepo(tripID uuid.UUID, seats int) *fakeBookingRepo {
	return &fakeBookingRepo{
		tripID: tripID,
		seats:  seats,
		active: map[int64]bool{},
	}
}

func (f *fakeBookingRepo) CreateInscription(_ context.Context, tripID uuid.UUID, profileRef int64) (*models.Inscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if tripID != f.tripID {
		return nil, apperrors.TripNotFound(tripID.String())
	}
	if f.active[profileRef] {
		return nil, apperrors.AlreadyInscribed()
	}
	if len(f.active) >= f.seats {
		return nil, apperrors.NoSeatsAvailable()
	}

	f.active[profileRef] = true
	f.nextRef++
	return &models.Inscription{
		Ref:        f.nextRef,
		ID:         uuid.New(),
		TripID:     tripID,
		ProfileRef: profileRef,
		Status:     models.InscriptionActive,
	}, nil
}

func (f *fakeBookingRepo) GetInscriptionByID(context.Context, uuid.UUID) (*models.Inscription, error) {
	panic("not used")
}

func (f *fakeBookingRepo) CancelInscription(context.Context, int64) error {
	panic("not used")
}

func (f *fakeBookingRepo) ListPassengers(context.Context, uuid.UUID, int, int) ([]*models.Inscription, int, error) {
	panic("not used")
}

// fakeProfileResolver hands each account a distinct profile ref.
type fakeProfileResolver struct {
	mu       sync.Mutex
	nextRef  int64
	profiles map[uuid.UUID]int64
}

func (f *fakeProfileResolver) GetProfileByAccountID(_ context.Context, accountID uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profiles == nil {
		f.profiles = map[uuid.UUID]int64{}
	}
	ref, ok := f.profiles[accountID]
	if !ok {
		f.nextRef++
		ref = f.nextRef
		f.profiles[accountID] = ref
	}
	return &models.Profile{Ref: ref}, nil
}

func TestCreateInscription_ConcurrentBookingsNeverOversell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const seats = 3
	const riders = 2 * seats

	tripID := uuid.New()
	repo := newFakeBookingRepo(tripID, seats)
	gw := mocks.NewMockBookingGW(ctrl)
	gw.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).Return(nil).Times(seats)

	uc := NewBookingUC(repo, &fakeProfileResolver{}, gw)

	var wg sync.WaitGroup
	results := make(chan error, riders)
	for i := 0; i < riders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateInscription(context.Background(), uuid.New(), &models.CreateInscriptionRequest{TripID: tripID})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var booked, rejected int
	for err := range results {
		switch {
		case err == nil:
			booked++
		case apperrors.IsCode(err, apperrors.CodeNoSeatsAvailable):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, seats, booked)
	assert.Equal(t, riders-seats, rejected)
}

func TestCreateInscription_ConcurrentDuplicatesCollapseToOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const attempts = 4

	tripID := uuid.New()
	repo := newFakeBookingRepo(tripID, 10)
	gw := mocks.NewMockBookingGW(ctrl)
	gw.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	uc := NewBookingUC(repo, &fakeProfileResolver{}, gw)

	accountID := uuid.New()
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateInscription(context.Background(), accountID, &models.CreateInscriptionRequest{TripID: tripID})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var booked, duplicates int
	for err := range results {
		switch {
		case err == nil:
			booked++
		case apperrors.IsCode(err, apperrors.CodeAlreadyInscribed):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, booked)
	assert.Equal(t, attempts-1, duplicates)
}
