package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
	"github.com/cocktales/cocktales-api/internal/domain/repository"
	"github.com/cocktales/cocktales-api/internal/infrastructure/memory"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

func seedUser(t *testing.T, repo *memory.UserRepository, id, email, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{ID: uuid.MustParse(id), Email: email, PasswordHash: hash}
	if err := repo.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func TestRegister(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)

	u, err := svc.Register(context.Background(), "joe@mail.com", "password")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Error("id not generated")
	}
	if u.PasswordHash == "password" || u.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, "password") {
		t.Error("stored hash does not verify against the raw password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	_, err := svc.Register(context.Background(), "joe@mail.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if repo.Count() != 1 {
		t.Errorf("duplicate register must not insert")
	}
}

func TestUpdateUserEmailAndPassword(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	u, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		ID:          uuid.MustParse("93449e9d-4082-4305-8840-fa1673bcf915"),
		Email:       "joe@newEmail.com",
		OldPassword: "password",
		NewPassword: "newPass",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Email != "joe@newEmail.com" {
		t.Errorf("email = %q", u.Email)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, "newPass") {
		t.Error("new password does not verify")
	}

	stored, _ := repo.GetUserByID(context.Background(), u.ID)
	if stored.Email != "joe@newEmail.com" {
		t.Errorf("stored email = %q", stored.Email)
	}
}

func TestUpdateUserEmailOnly(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	orig := seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	u, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		ID:    orig.ID,
		Email: "joe@newEmail.com",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.PasswordHash != orig.PasswordHash {
		t.Error("hash changed without a password change request")
	}
}

func TestUpdateUserEmailTakenByOther(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	joe := seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")
	seedUser(t, repo, "24306b5d-9107-4c26-bd55-d0ff6ac9382a", "andrea@mail.com", "password")

	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		ID:    joe.ID,
		Email: "andrea@mail.com",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	stored, _ := repo.GetUserByID(context.Background(), joe.ID)
	if stored.Email != "joe@mail.com" {
		t.Errorf("email changed despite conflict: %q", stored.Email)
	}
}

func TestUpdateUserSameEmailNoConflict(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	joe := seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	// Keeping your own email is not a conflict.
	if _, err := svc.UpdateUser(context.Background(), UpdateUserInput{ID: joe.ID, Email: "joe@mail.com"}); err != nil {
		t.Fatalf("update with own email: %v", err)
	}
}

func TestUpdateUserWrongOldPassword(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	joe := seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		ID:          joe.ID,
		Email:       "joe@mail.com",
		OldPassword: "wrong",
		NewPassword: "newPass",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	stored, _ := repo.GetUserByID(context.Background(), joe.ID)
	if stored.PasswordHash != joe.PasswordHash {
		t.Error("hash changed despite mismatch")
	}
}

func TestUpdateUserAbsentID(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)

	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		ID:    uuid.MustParse("dc5b6421-d452-4862-b741-d43383c3fe1d"),
		Email: "ghost@mail.com",
	})
	if !repository.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo, nil, nil)
	joe := seedUser(t, repo, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	if err := svc.DeleteUser(context.Background(), joe.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), joe.ID); !repository.IsNotFound(err) {
		t.Errorf("expected NotFoundError on repeat delete, got %v", err)
	}
}
