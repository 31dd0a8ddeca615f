package models

import "github.com/google/uuid"

// City is a named place with a postal code. Cities referenced by name in trip
// payloads are found or created; auto-created rows carry an empty postal code.
type City struct {
	Ref        int64     `json:"-" db:"ref"`
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
}
