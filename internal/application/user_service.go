package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	repo "github.com/cocktales/cocktales-api/internal/domain/repository"
	"github.com/cocktales/cocktales-api/pkg/helpers"
	"github.com/cocktales/cocktales-api/pkg/mailer"
)

var (
	ErrEmailTaken       = errors.New("email already registered to another user")
	ErrPasswordMismatch = errors.New("old password does not match stored hash")
)

// UserService orchestrates user repository calls with cross-field validation:
// email uniqueness on register/update and old-password verification before a
// password change.
type UserService struct {
	Repo   repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Pub: pub, Logger: logger}
}

// Register hashes the raw password, stores a new user and enqueues a welcome
// email when a publisher is configured.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !repo.IsNotFound(err) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{To: u.Email, Template: "welcome", Data: map[string]any{"Email": u.Email}}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}
	return u, nil
}

// CreateUser stores a pre-built user; validation beyond what the repository
// enforces is the caller's concern.
func (s *UserService) CreateUser(ctx context.Context, u *entity.User) error {
	return s.Repo.CreateUser(ctx, u)
}

// GetUserByID delegates to the repository, propagating its errors unchanged.
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.Repo.GetUserByID(ctx, id)
}

// GetUserByEmail delegates to the repository, propagating its errors unchanged.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.Repo.GetUserByEmail(ctx, email)
}

type UpdateUserInput struct {
	ID          uuid.UUID
	Email       string
	OldPassword string
	NewPassword string
}

// UpdateUser applies an account update. It fails with the repository's
// NotFoundError when the id is absent, with ErrEmailTaken when the new email
// belongs to a different user, and with ErrPasswordMismatch when a password
// change is requested but the old password does not verify.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetUserByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && in.Email != u.Email {
		existing, err := s.Repo.GetUserByEmail(ctx, in.Email)
		if err == nil && existing.ID != u.ID {
			return nil, ErrEmailTaken
		}
		if err != nil && !repo.IsNotFound(err) {
			return nil, err
		}
		u.Email = in.Email
	}

	if in.NewPassword != "" {
		if !helpers.CompareHashAndPassword(u.PasswordHash, in.OldPassword) {
			return nil, ErrPasswordMismatch
		}
		hash, err := helpers.HashPassword(in.NewPassword)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.Repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the user by id, propagating repository errors unchanged.
// Deleting an absent id fails with NotFoundError, matching the profile
// repository's fail-fast convention.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.Repo.DeleteUser(ctx, id)
}
