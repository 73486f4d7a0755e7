package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	"github.com/cocktales/cocktales-api/internal/domain/repository"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, p *entity.Profile) error {
	now := time.Now().UTC().Truncate(time.Second)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	row := ExtractProfile(p)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_profile (id, user_id, username, first_name, last_name, city, county, slogan, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, row.ID, row.UserID, row.Username, row.FirstName, row.LastName, row.City, row.County, row.Slogan, row.AvatarURL, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return &repository.RepositoryError{Op: "create profile", Err: err}
	}
	return nil
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var row ProfileRow
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, username, first_name, last_name, city, county, slogan, avatar_url, created_at, updated_at
		FROM user_profile
		WHERE user_id = $1
	`, binaryUUID(userID)).Scan(
		&row.ID, &row.UserID, &row.Username, &row.FirstName, &row.LastName,
		&row.City, &row.County, &row.Slogan, &row.AvatarURL, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrProfileNotFound(userID)
		}
		return nil, &repository.RepositoryError{Op: "get profile by user id", Err: err}
	}
	return HydrateProfile(row)
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, p *entity.Profile) error {
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	row := ExtractProfile(p)
	res, err := r.pool.Exec(ctx, `
		UPDATE user_profile
		SET username = $1, first_name = $2, last_name = $3, city = $4, county = $5, slogan = $6, avatar_url = $7, updated_at = $8
		WHERE user_id = $9
	`, row.Username, row.FirstName, row.LastName, row.City, row.County, row.Slogan, row.AvatarURL, row.UpdatedAt, row.UserID)
	if err != nil {
		return &repository.RepositoryError{Op: "update profile", Err: err}
	}
	if res.RowsAffected() == 0 {
		return repository.ErrProfileUpdateNotFound(p.UserID)
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
