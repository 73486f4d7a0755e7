package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Lookups return a NotFoundError when no row matches; UpdateUser and
// DeleteUser fail the same way for an absent id.
type UserRepository interface {
	CreateUser(ctx context.Context, u *entity.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, u *entity.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
