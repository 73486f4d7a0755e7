package entity

import (
	"github.com/google/uuid"
)

// User is the aggregate root for the user domain.
// PasswordHash holds a bcrypt hash; plaintext passwords are never stored.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}
