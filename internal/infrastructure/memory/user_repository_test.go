package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	"github.com/cocktales/cocktales-api/internal/domain/repository"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{
		ID:           uuid.MustParse("93449e9d-4082-4305-8840-fa1673bcf915"),
		Email:        "joe@mail.com",
		PasswordHash: "hash",
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Email != "joe@mail.com" || got.PasswordHash != "hash" {
		t.Errorf("unexpected user: %+v", got)
	}

	byEmail, err := repo.GetUserByEmail(ctx, "joe@mail.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("id mismatch: %s", byEmail.ID)
	}
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{ID: uuid.New(), Email: "joe@mail.com", PasswordHash: "hash"}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := repo.GetUserByID(ctx, u.ID)
	got.Email = "tampered@mail.com"

	again, _ := repo.GetUserByID(ctx, u.ID)
	if again.Email != "joe@mail.com" {
		t.Errorf("mutation of returned entity leaked into store")
	}
}

func TestUserRepositoryGetAbsentID(t *testing.T) {
	repo := NewUserRepository()
	id := uuid.MustParse("dc5b6421-d452-4862-b741-d43383c3fe1d")

	_, err := repo.GetUserByID(context.Background(), id)
	if err == nil {
		t.Fatal("expected error for absent id")
	}
	if !repository.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	want := "User with ID 'dc5b6421-d452-4862-b741-d43383c3fe1d' does not exist"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestUserRepositoryGetAbsentEmail(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetUserByEmail(context.Background(), "ghost@mail.com")
	if !repository.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	want := "User with email 'ghost@mail.com' does not exist"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{ID: uuid.New(), Email: "joe@mail.com", PasswordHash: "hash"}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	u.Email = "joe@newEmail.com"
	if err := repo.UpdateUser(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.GetUserByID(ctx, u.ID)
	if got.Email != "joe@newEmail.com" {
		t.Errorf("email = %q after update", got.Email)
	}
}

func TestUserRepositoryUpdateAbsentFailsFast(t *testing.T) {
	repo := NewUserRepository()
	u := &entity.User{ID: uuid.New(), Email: "joe@mail.com"}

	err := repo.UpdateUser(context.Background(), u)
	if !repository.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if repo.Count() != 0 {
		t.Errorf("update of absent id must not insert")
	}
}

func TestUserRepositoryDelete(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{ID: uuid.New(), Email: "joe@mail.com"}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.Count() != 0 {
		t.Errorf("user still present after delete")
	}

	if err := repo.DeleteUser(ctx, u.ID); !repository.IsNotFound(err) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}
