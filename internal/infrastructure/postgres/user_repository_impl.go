package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	"github.com/cocktales/cocktales-api/internal/domain/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *entity.User) error {
	row := ExtractUser(u)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO "user" (id, email, password_hash)
		VALUES ($1, $2, $3)
	`, row.ID, row.Email, row.PasswordHash)
	if err != nil {
		op := "create user"
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			op = "create user: email already registered"
		}
		return &repository.RepositoryError{Op: op, Err: err}
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row UserRow
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM "user"
		WHERE id = $1
	`, binaryUUID(id)).Scan(&row.ID, &row.Email, &row.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFoundByID(id)
		}
		return nil, &repository.RepositoryError{Op: "get user by id", Err: err}
	}
	return HydrateUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row UserRow
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM "user"
		WHERE email = $1
	`, email).Scan(&row.ID, &row.Email, &row.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFoundByEmail(email)
		}
		return nil, &repository.RepositoryError{Op: "get user by email", Err: err}
	}
	return HydrateUser(row)
}

func (r *UserRepository) UpdateUser(ctx context.Context, u *entity.User) error {
	row := ExtractUser(u)
	res, err := r.pool.Exec(ctx, `
		UPDATE "user"
		SET email = $1, password_hash = $2
		WHERE id = $3
	`, row.Email, row.PasswordHash, row.ID)
	if err != nil {
		return &repository.RepositoryError{Op: "update user", Err: err}
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserNotFoundByID(u.ID)
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM "user"
		WHERE id = $1
	`, binaryUUID(id))
	if err != nil {
		return &repository.RepositoryError{Op: "delete user", Err: err}
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserNotFoundByID(id)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
