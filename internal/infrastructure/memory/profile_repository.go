package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	"github.com/cocktales/cocktales-api/internal/domain/repository"
)

// ProfileRepository is an in-memory implementation of
// repository.ProfileRepository keyed by the owning user's id.
type ProfileRepository struct {
	mu    sync.RWMutex
	store map[uuid.UUID]*entity.Profile
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{store: make(map[uuid.UUID]*entity.Profile)}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	profileCopy := *p
	r.store[profileCopy.UserID] = &profileCopy
	return nil
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound(userID)
	}
	profileCopy := *p
	return &profileCopy, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[p.UserID]; !ok {
		return repository.ErrProfileUpdateNotFound(p.UserID)
	}
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	profileCopy := *p
	r.store[profileCopy.UserID] = &profileCopy
	return nil
}

// Count reports the number of stored profiles; test helper.
func (r *ProfileRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
