package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence. A profile
// is keyed by the owning user's id for reads and updates.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, p *entity.Profile) error
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, p *entity.Profile) error
}
