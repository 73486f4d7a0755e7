package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
)

// TimeLayout is the storage format for profile timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// UserRow is the flat storage representation of a user. IDs are stored as
// 16-byte binary values.
type UserRow struct {
	ID           []byte
	Email        string
	PasswordHash string
}

// ProfileRow is the flat storage representation of a profile.
type ProfileRow struct {
	ID        []byte
	UserID    []byte
	Username  string
	FirstName string
	LastName  string
	City      string
	County    string
	Slogan    string
	AvatarURL string
	CreatedAt string
	UpdatedAt string
}

// ExtractUser converts a user entity into its row representation.
// Pure: no side effects, same input yields the same output.
func ExtractUser(u *entity.User) UserRow {
	return UserRow{
		ID:           binaryUUID(u.ID),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

// HydrateUser converts a row back into a user entity.
func HydrateUser(r UserRow) (*entity.User, error) {
	id, err := uuid.FromBytes(r.ID)
	if err != nil {
		return nil, fmt.Errorf("hydrate user: %w", err)
	}
	return &entity.User{
		ID:           id,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	}, nil
}

// ExtractProfile converts a profile entity into its row representation:
// UUIDs become their 16-byte binary encoding, timestamps the TimeLayout
// string. Pure and stateless.
func ExtractProfile(p *entity.Profile) ProfileRow {
	return ProfileRow{
		ID:        binaryUUID(p.ID),
		UserID:    binaryUUID(p.UserID),
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		City:      p.City,
		County:    p.County,
		Slogan:    p.Slogan,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.UTC().Format(TimeLayout),
		UpdatedAt: p.UpdatedAt.UTC().Format(TimeLayout),
	}
}

// HydrateProfile converts a row back into a profile entity.
func HydrateProfile(r ProfileRow) (*entity.Profile, error) {
	id, err := uuid.FromBytes(r.ID)
	if err != nil {
		return nil, fmt.Errorf("hydrate profile id: %w", err)
	}
	userID, err := uuid.FromBytes(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("hydrate profile user id: %w", err)
	}
	created, err := time.ParseInLocation(TimeLayout, r.CreatedAt, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("hydrate profile created_at: %w", err)
	}
	updated, err := time.ParseInLocation(TimeLayout, r.UpdatedAt, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("hydrate profile updated_at: %w", err)
	}
	return &entity.Profile{
		ID:        id,
		UserID:    userID,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		City:      r.City,
		County:    r.County,
		Slogan:    r.Slogan,
		AvatarURL: r.AvatarURL,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

func binaryUUID(id uuid.UUID) []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	return b
}
