package models

import (
	"time"

	"github.com/google/uuid"
)

// Role constants. Levels form a hierarchy: each level inherits the access of
// the levels below it.
const (
	RoleUser   = "USER"
	RoleDriver = "DRIVER"
	RoleAdmin  = "ADMIN"
)

var roleLevels = map[string]int{
	RoleUser:   1,
	RoleDriver: 2,
	RoleAdmin:  3,
}

// RoleLevel returns the numeric level for a role, or 0 for an unknown role.
func RoleLevel(role string) int {
	return roleLevels[role]
}

// Account is the credential identity. Ref is the internal join key and is
// never serialized; ID is the externally exposed identifier.
type Account struct {
	Ref          int64      `json:"-" db:"ref"`
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

// Profile is the display identity owned by an Account.
type Profile struct {
	Ref        int64      `json:"-" db:"ref"`
	ID         uuid.UUID  `json:"id" db:"id"`
	AccountRef int64      `json:"-" db:"account_ref"`
	FirstName  string     `json:"first_name" db:"first_name"`
	LastName   string     `json:"last_name" db:"last_name"`
	Phone      string     `json:"phone" db:"phone"`
	DeletedAt  *time.Time `json:"-" db:"deleted_at"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the payload for profile updates.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt int64     `json:"expires_at"`
}
