package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverProfile extends a Profile with a license number. A profile has at
// most one driver profile; it is the ownership anchor for vehicles and trips.
type DriverProfile struct {
	Ref           int64     `json:"-" db:"ref"`
	ID            uuid.UUID `json:"id" db:"id"`
	ProfileRef    int64     `json:"-" db:"profile_ref"`
	LicenseNumber string    `json:"license_number" db:"license_number"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RegisterDriverRequest is the payload for the become-a-driver action.
type RegisterDriverRequest struct {
	LicenseNumber string `json:"license_number"`
}
