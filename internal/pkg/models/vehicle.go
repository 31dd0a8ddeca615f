package models

import (
	"github.com/google/uuid"
)

// Brand is a vehicle manufacturer. Brands are never auto-created; vehicle
// creation fails when the named brand does not exist.
type Brand struct {
	Ref  int64     `json:"-" db:"ref"`
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// VehicleModel is a model under a brand, found or created by (name, brand).
type VehicleModel struct {
	Ref      int64     `json:"-" db:"ref"`
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	BrandRef int64     `json:"-" db:"brand_ref"`
}

// Vehicle is a car owned by a DriverProfile. BrandName and ModelName are
// joined for responses and carry no db column of their own on vehicles.
type Vehicle struct {
	Ref       int64     `json:"-" db:"ref"`
	ID        uuid.UUID `json:"id" db:"id"`
	Plate     string    `json:"plate" db:"plate"`
	ModelRef  int64     `json:"-" db:"model_ref"`
	DriverRef int64     `json:"-" db:"driver_ref"`
	ModelName string    `json:"model" db:"model_name"`
	BrandName string    `json:"brand" db:"brand_name"`
}

// CreateVehicleRequest is the payload for vehicle creation and update. Brand
// is matched by case-insensitive name on create and by ID on update.
type CreateVehicleRequest struct {
	Plate     string    `json:"plate"`
	BrandName string    `json:"brand"`
	BrandID   uuid.UUID `json:"brand_id"`
	ModelName string    `json:"model"`
}

// CreateBrandRequest is the payload for brand creation.
type CreateBrandRequest struct {
	Name string `json:"name"`
}
