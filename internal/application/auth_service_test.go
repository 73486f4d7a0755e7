package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cocktales/cocktales-api/internal/infrastructure/memory"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

func newAuthService(t *testing.T) (*AuthService, *memory.UserRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwt, nil, nil), users
}

func TestAuthenticate(t *testing.T) {
	svc, users := newAuthService(t)
	seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	u, err := svc.Authenticate(context.Background(), "joe@mail.com", "password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Email != "joe@mail.com" {
		t.Errorf("email = %q", u.Email)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, users := newAuthService(t)
	seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	if _, err := svc.Authenticate(context.Background(), "joe@mail.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateAbsentUser(t *testing.T) {
	svc, _ := newAuthService(t)

	// Absent account and bad password collapse into the same error.
	if _, err := svc.Authenticate(context.Background(), "ghost@mail.com", "password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginAndRefresh(t *testing.T) {
	svc, users := newAuthService(t)
	seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	u, pair, err := svc.Login(context.Background(), "joe@mail.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token pair")
	}
	if !pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry) {
		t.Error("refresh token should outlive access token")
	}

	rotated, uid, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if uid != u.ID.String() {
		t.Errorf("uid = %q", uid)
	}
	if rotated.RefreshToken == "" {
		t.Error("rotated pair empty")
	}
}

func TestRefreshGarbageToken(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
