package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ridepool/carpool/internal/pkg/apperrors"
	"github.com/ridepool/carpool/internal/pkg/cache"
	"github.com/ridepool/carpool/internal/pkg/logger"
	"github.com/ridepool/carpool/internal/pkg/models"
	"github.com/ridepool/carpool/services/trips"
)

// Trip reads go through a short-TTL cache; every mutation drops the whole
// trip keyspace.
const tripCachePattern = "trips:*"

// TripUC implements trips.TripUC.
type TripUC struct {
	tripRepo    trips.TripRepo
	cityRepo    trips.CityRepo
	driverRepo  trips.DriverResolver
	vehicleRepo trips.VehicleResolver
	tripGW      trips.TripGW
	cache       *cache.Cache
}

// NewTripUC creates the trip usecase. cache may be nil to disable caching.
func NewTripUC(
	tripRepo trips.TripRepo,
	cityRepo trips.CityRepo,
	driverRepo trips.DriverResolver,
	vehicleRepo trips.VehicleResolver,
	tripGW trips.TripGW,
	tripCache *cache.Cache,
) *TripUC {
	return &TripUC{
		tripRepo:    tripRepo,
		cityRepo:    cityRepo,
		driverRepo:  driverRepo,
		vehicleRepo: vehicleRepo,
		tripGW:      tripGW,
		cache:       tripCache,
	}
}

// CreateTrip publishes a trip for the calling driver. The vehicle must
// belong to the caller; departure and arrival cities are found or created
// by name.
func (u *TripUC) CreateTrip(ctx context.Context, callerID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	driver, err := u.driverRepo.GetDriverByAccountID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	vehicle, err := u.vehicleRepo.GetVehicleByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.DriverRef != driver.Ref {
		return nil, apperrors.Forbidden("vehicle does not belong to the caller")
	}

	departure, err := u.cityRepo.FindOrCreateByName(ctx, strings.TrimSpace(req.DepartureCity))
	if err != nil {
		return nil, err
	}
	arrival, err := u.cityRepo.FindOrCreateByName(ctx, strings.TrimSpace(req.ArrivalCity))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &models.Trip{
		ID:          uuid.New(),
		DriverRef:   driver.Ref,
		VehicleRef:  vehicle.Ref,
		DriverID:    driver.ID,
		VehicleID:   vehicle.ID,
		DepartureAt: req.DepartureAt,
		DistanceKm:  req.DistanceKm,
		Seats:       req.Seats,
		Departure:   departure,
		Arrival:     arrival,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.tripRepo.CreateTrip(ctx, trip, departure.Ref, arrival.Ref); err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, tripCachePattern)
	u.publish(ctx, trip, false)

	logger.Info("trip published",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", driver.ID.String()),
		logger.Int("seats", trip.Seats))
	return trip, nil
}

// GetTrip returns one trip by external ID.
func (u *TripUC) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	key := fmt.Sprintf("trips:id:%s", id)
	err := u.cache.Remember(ctx, key, &trip, func(ctx context.Context) (interface{}, error) {
		return u.tripRepo.GetTripByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListTrips returns a page of trips with the total count.
func (u *TripUC) ListTrips(ctx context.Context, q models.PaginationQuery) ([]*models.Trip, int, error) {
	var page tripPage
	key := fmt.Sprintf("trips:list:p%d:l%d", q.Page, q.Limit)
	err := u.cache.Remember(ctx, key, &page, func(ctx context.Context) (interface{}, error) {
		items, total, err := u.tripRepo.ListTrips(ctx, q.Limit, q.Offset())
		if err != nil {
			return nil, err
		}
		return tripPage{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

// SearchTrips returns the trips matching the ANDed filter criteria.
func (u *TripUC) SearchTrips(ctx context.Context, filter models.TripSearchFilter, q models.PaginationQuery) ([]*models.Trip, int, error) {
	var page tripPage
	key := searchCacheKey(filter, q)
	err := u.cache.Remember(ctx, key, &page, func(ctx context.Context) (interface{}, error) {
		items, total, err := u.tripRepo.SearchTrips(ctx, filter, q.Limit, q.Offset())
		if err != nil {
			return nil, err
		}
		return tripPage{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

// UpdateTrip changes the departure time, distance and seat count of a trip
// owned by the caller.
func (u *TripUC) UpdateTrip(ctx context.Context, callerID uuid.UUID, id uuid.UUID, req *models.UpdateTripRequest) (*models.Trip, error) {
	details := map[string]string{}
	if req.Seats < 1 {
		details["seats"] = "at least one seat is required"
	}
	if req.DistanceKm <= 0 {
		details["distance_km"] = "distance must be positive"
	}
	if req.DepartureAt.IsZero() {
		details["departure_at"] = "departure time is required"
	}
	if len(details) > 0 {
		return nil, apperrors.Validation(details)
	}

	trip, err := u.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.authorizeOwner(ctx, callerID, trip); err != nil {
		return nil, err
	}

	trip.DepartureAt = req.DepartureAt
	trip.DistanceKm = req.DistanceKm
	trip.Seats = req.Seats
	trip.UpdatedAt = time.Now()

	if err := u.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, tripCachePattern)
	return trip, nil
}

// DeleteTrip removes a trip owned by the caller along with its inscriptions.
func (u *TripUC) DeleteTrip(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error {
	trip, err := u.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.authorizeOwner(ctx, callerID, trip); err != nil {
		return err
	}

	if err := u.tripRepo.DeleteTrip(ctx, trip.Ref); err != nil {
		return err
	}

	u.cache.Invalidate(ctx, tripCachePattern)
	u.publish(ctx, trip, true)

	logger.Info("trip deleted", logger.String("trip_id", id.String()))
	return nil
}

// authorizeOwner lets only the owning driver through. ADMIN accounts get no
// override on trips.
func (u *TripUC) authorizeOwner(ctx context.Context, callerID uuid.UUID, trip *models.Trip) error {
	driver, err := u.driverRepo.GetDriverByAccountID(ctx, callerID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeDriverNotFound) {
			return apperrors.Forbidden("trip does not belong to the caller")
		}
		return err
	}
	if driver.Ref != trip.DriverRef {
		return apperrors.Forbidden("trip does not belong to the caller")
	}
	return nil
}

func (u *TripUC) publish(ctx context.Context, trip *models.Trip, deleted bool) {
	if u.tripGW == nil {
		return
	}
	event := &models.TripEvent{
		TripID:      trip.ID,
		DriverID:    trip.DriverID,
		DepartureAt: trip.DepartureAt,
		Seats:       trip.Seats,
		Timestamp:   time.Now(),
	}
	if trip.Departure != nil {
		event.DepartureCity = trip.Departure.Name
	}
	if trip.Arrival != nil {
		event.ArrivalCity = trip.Arrival.Name
	}

	send := u.tripGW.TripPublished
	if deleted {
		send = u.tripGW.TripDeleted
	}
	if err := send(ctx, event); err != nil {
		logger.Warn("failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.ErrorField(err))
	}
}

func validateCreate(req *models.CreateTripRequest) error {
	details := map[string]string{}
	if req.Seats < 1 {
		details["seats"] = "at least one seat is required"
	}
	if req.DistanceKm <= 0 {
		details["distance_km"] = "distance must be positive"
	}
	if req.DepartureAt.IsZero() {
		details["departure_at"] = "departure time is required"
	}
	if strings.TrimSpace(req.DepartureCity) == "" {
		details["departure_city"] = "departure city is required"
	}
	if strings.TrimSpace(req.ArrivalCity) == "" {
		details["arrival_city"] = "arrival city is required"
	}
	if req.VehicleID == uuid.Nil {
		details["vehicle_id"] = "vehicle id is required"
	}
	if len(details) > 0 {
		return apperrors.Validation(details)
	}
	return nil
}

// tripPage is the cached shape of a paginated trip result.
type tripPage struct {
	Items []*models.Trip `json:"items"`
	Total int            `json:"total"`
}

func searchCacheKey(filter models.TripSearchFilter, q models.PaginationQuery) string {
	date := ""
	if filter.Date != nil {
		date = filter.Date.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("trips:search:%s:%s:%s:p%d:l%d",
		strings.ToLower(filter.DepartureCity), strings.ToLower(filter.ArrivalCity), date, q.Page, q.Limit)
}
