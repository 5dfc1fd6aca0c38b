package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a local account provisioned from a Google sign-in.
// Exactly one User exists per Google subject id; profile fields are
// overwritten on every successful login.
type User struct {
	ID        uuid.UUID `json:"id"`
	GoogleID  string    `json:"google_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
