package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	"github.com/cocktales/cocktales-api/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
// It honours the same error contract as the Postgres implementation and is
// used by service and handler tests.
type UserRepository struct {
	mu    sync.RWMutex
	store map[uuid.UUID]*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{store: make(map[uuid.UUID]*entity.User)}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userCopy := *u
	r.store[userCopy.ID] = &userCopy
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, repository.ErrUserNotFoundByID(id)
	}
	userCopy := *u
	return &userCopy, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			userCopy := *u
			return &userCopy, nil
		}
	}
	return nil, repository.ErrUserNotFoundByEmail(email)
}

func (r *UserRepository) UpdateUser(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[u.ID]; !ok {
		return repository.ErrUserNotFoundByID(u.ID)
	}
	userCopy := *u
	r.store[userCopy.ID] = &userCopy
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return repository.ErrUserNotFoundByID(id)
	}
	delete(r.store, id)
	return nil
}

// Count reports the number of stored users; test helper.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
