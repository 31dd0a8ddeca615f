package models

import (
	"time"

	"github.com/google/uuid"
)

// NSQ topics for domain events.
const (
	TopicTripPublished    = "trip.published"
	TopicTripDeleted      = "trip.deleted"
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicDriverRegistered = "driver.registered"
)

// TripEvent is published when a trip is created or deleted.
type TripEvent struct {
	TripID        uuid.UUID `json:"trip_id"`
	DriverID      uuid.UUID `json:"driver_id"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	DepartureAt   time.Time `json:"departure_at"`
	Seats         int       `json:"seats"`
	Timestamp     time.Time `json:"timestamp"`
}

// BookingEvent is published when an inscription is created or cancelled.
type BookingEvent struct {
	InscriptionID uuid.UUID `json:"inscription_id"`
	TripID        uuid.UUID `json:"trip_id"`
	RiderID       uuid.UUID `json:"rider_id"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// DriverEvent is published when a user becomes a driver.
type DriverEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	AccountID uuid.UUID `json:"account_id"`
	Timestamp time.Time `json:"timestamp"`
}
