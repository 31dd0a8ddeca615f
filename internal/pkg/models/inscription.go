package models

import (
	"time"

	"github.com/google/uuid"
)

// Inscription statuses.
const (
	InscriptionActive    = "ACTIVE"
	InscriptionCancelled = "CANCELLED"
)

// Inscription is a rider's booking of one seat on a trip. RiderID is the
// joined external profile ID for responses.
type Inscription struct {
	Ref        int64     `json:"-" db:"ref"`
	ID         uuid.UUID `json:"id" db:"id"`
	TripRef    int64     `json:"-" db:"trip_ref"`
	ProfileRef int64     `json:"-" db:"profile_ref"`
	TripID     uuid.UUID `json:"trip_id" db:"trip_id"`
	RiderID    uuid.UUID `json:"rider_id" db:"rider_id"`
	RiderName  string    `json:"rider_name,omitempty" db:"rider_name"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateInscriptionRequest is the payload for booking a seat.
type CreateInscriptionRequest struct {
	TripID uuid.UUID `json:"trip_id"`
}
