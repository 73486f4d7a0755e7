package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile carries the public-facing details a user attaches to their account.
// Exactly one profile exists per user; UserID is unique in storage.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	FirstName string
	LastName  string
	City      string
	County    string
	Slogan    string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
