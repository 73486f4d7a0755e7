package application

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/repository"
	"github.com/cocktales/cocktales-api/internal/infrastructure/memory"
)

func newProfileService(t *testing.T) (*ProfileService, *memory.UserRepository, *memory.ProfileRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	profiles := memory.NewProfileRepository()
	svc := NewProfileService(profiles, users, nil, nil, "", nil, "", nil)
	return svc, users, profiles
}

func TestCreateProfile(t *testing.T) {
	svc, users, _ := newProfileService(t)
	joe := seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	p, err := svc.CreateProfile(context.Background(), CreateProfileInput{
		UserID:    joe.ID,
		Username:  "joe",
		FirstName: "Joe",
		LastName:  "Bloggs",
		City:      "Dundee",
		County:    "Angus",
		Slogan:    "may the force be with you",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("id not generated")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCreateProfileKeepsGivenID(t *testing.T) {
	svc, users, _ := newProfileService(t)
	joe := seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")

	id := uuid.MustParse("03622d29-9e1d-499e-a9dd-9fcd12b4fab9")
	p, err := svc.CreateProfile(context.Background(), CreateProfileInput{ID: id, UserID: joe.ID, Username: "joe"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != id {
		t.Errorf("id = %s, want %s", p.ID, id)
	}
}

func TestCreateProfileForAbsentUser(t *testing.T) {
	svc, _, profiles := newProfileService(t)

	_, err := svc.CreateProfile(context.Background(), CreateProfileInput{
		UserID:   uuid.MustParse("dc5b6421-d452-4862-b741-d43383c3fe1d"),
		Username: "ghost",
	})
	if !repository.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if profiles.Count() != 0 {
		t.Errorf("profile stored for absent user")
	}
}

func TestGetProfileByUserID(t *testing.T) {
	svc, users, _ := newProfileService(t)
	joe := seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")
	if _, err := svc.CreateProfile(context.Background(), CreateProfileInput{UserID: joe.ID, Username: "joe"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := svc.GetProfileByUserID(context.Background(), joe.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Username != "joe" {
		t.Errorf("username = %q", p.Username)
	}
}

func TestUpdateProfileMergesNonEmptyFields(t *testing.T) {
	svc, users, _ := newProfileService(t)
	joe := seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")
	if _, err := svc.CreateProfile(context.Background(), CreateProfileInput{
		UserID: joe.ID, Username: "joe", City: "Dundee", Slogan: "may the force be with you",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: joe.ID, City: "Glasgow"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.City != "Glasgow" {
		t.Errorf("city = %q", p.City)
	}
	if p.Username != "joe" || p.Slogan != "may the force be with you" {
		t.Errorf("untouched fields were cleared: %+v", p)
	}
}

func TestUpdateProfileAbsent(t *testing.T) {
	svc, _, _ := newProfileService(t)
	id := uuid.MustParse("24306b5d-9107-4c26-bd55-d0ff6ac9382a")

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: id, City: "Nowhere"})
	if !repository.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	want := "Cannot update - Profile with User ID 24306b5d-9107-4c26-bd55-d0ff6ac9382a does not exist"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestUploadAvatarWithoutGCS(t *testing.T) {
	svc, users, _ := newProfileService(t)
	joe := seedUser(t, users, "93449e9d-4082-4305-8840-fa1673bcf915", "joe@mail.com", "password")
	if _, err := svc.CreateProfile(context.Background(), CreateProfileInput{UserID: joe.ID, Username: "joe"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.UploadAvatar(context.Background(), joe.ID, nil, "a.png", "image/png")
	if err == nil {
		t.Fatal("expected error without configured GCS")
	}
	if repository.IsNotFound(err) {
		t.Errorf("unexpected not-found: %v", err)
	}
}

func TestSearchProfilesWithoutES(t *testing.T) {
	svc, _, _ := newProfileService(t)

	res, err := svc.SearchProfiles(context.Background(), "joe", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("expected empty result, got %d hits", len(res))
	}
	if res == nil {
		t.Error("expected non-nil slice")
	}
}
