package models

import (
	"time"

	"github.com/google/uuid"
)

// City association kinds. Every trip has exactly one of each.
const (
	CityKindDeparture = "DEPARTURE"
	CityKindArrival   = "ARRIVAL"
)

// Trip is a published carpooling journey. DriverRef and VehicleRef are
// internal join keys; DriverID and VehicleID are the joined external IDs.
type Trip struct {
	Ref         int64     `json:"-" db:"ref"`
	ID          uuid.UUID `json:"id" db:"id"`
	DriverRef   int64     `json:"-" db:"driver_ref"`
	VehicleRef  int64     `json:"-" db:"vehicle_ref"`
	DriverID    uuid.UUID `json:"driver_id" db:"driver_id"`
	VehicleID   uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	DepartureAt time.Time `json:"departure_at" db:"departure_at"`
	DistanceKm  float64   `json:"distance_km" db:"distance_km"`
	Seats       int       `json:"seats" db:"seats"`
	Departure   *City     `json:"departure,omitempty"`
	Arrival     *City     `json:"arrival,omitempty"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTripRequest is the payload for trip publishing.
type CreateTripRequest struct {
	DepartureAt   time.Time `json:"departure_at"`
	DistanceKm    float64   `json:"distance_km"`
	Seats         int       `json:"seats"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
}

// UpdateTripRequest is the payload for trip updates by the owning driver.
type UpdateTripRequest struct {
	DepartureAt time.Time `json:"departure_at"`
	DistanceKm  float64   `json:"distance_km"`
	Seats       int       `json:"seats"`
}

// TripSearchFilter holds the optional, ANDed search criteria. Departure and
// arrival match the typed city association by exact name; Date matches the
// UTC calendar day.
type TripSearchFilter struct {
	DepartureCity string
	ArrivalCity   string
	Date          *time.Time
}
