package postgres

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
)

func TestExtractUserBinaryID(t *testing.T) {
	id := uuid.MustParse("acbde855-3b9d-4ad8-801d-78fffcda2be7")
	u := &entity.User{ID: id, Email: "joe@mail.com", PasswordHash: "hash"}

	row := ExtractUser(u)

	if len(row.ID) != 16 {
		t.Fatalf("expected 16-byte id, got %d bytes", len(row.ID))
	}
	if !bytes.Equal(row.ID, id[:]) {
		t.Errorf("row id bytes do not match uuid bytes")
	}
	if row.Email != "joe@mail.com" || row.PasswordHash != "hash" {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestExtractUserIsPure(t *testing.T) {
	id := uuid.MustParse("acbde855-3b9d-4ad8-801d-78fffcda2be7")
	u := &entity.User{ID: id, Email: "joe@mail.com", PasswordHash: "hash"}

	first := ExtractUser(u)
	second := ExtractUser(u)

	if !bytes.Equal(first.ID, second.ID) || first.Email != second.Email || first.PasswordHash != second.PasswordHash {
		t.Errorf("repeated extraction produced different rows: %+v vs %+v", first, second)
	}
	if u.ID != id || u.Email != "joe@mail.com" || u.PasswordHash != "hash" {
		t.Errorf("extraction mutated entity: %+v", u)
	}

	// Mutating the returned slice must not touch the entity.
	first.ID[0] ^= 0xff
	if u.ID != id {
		t.Errorf("mutating row id changed entity id")
	}
}

func TestHydrateUserRoundTrip(t *testing.T) {
	id := uuid.MustParse("93449e9d-4082-4305-8840-fa1673bcf915")
	u := &entity.User{ID: id, Email: "joe@mail.com", PasswordHash: "bcrypted"}

	back, err := HydrateUser(ExtractUser(u))
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if back.ID != u.ID || back.Email != u.Email || back.PasswordHash != u.PasswordHash {
		t.Errorf("round trip mismatch: %+v vs %+v", back, u)
	}
}

func TestHydrateUserBadID(t *testing.T) {
	if _, err := HydrateUser(UserRow{ID: []byte{1, 2, 3}, Email: "x@mail.com"}); err == nil {
		t.Fatal("expected error for short id bytes")
	}
}

func TestExtractProfileFormatsTimestamps(t *testing.T) {
	created := time.Date(2017, 3, 12, 0, 0, 0, 0, time.UTC)
	p := &entity.Profile{
		ID:        uuid.MustParse("03622d29-9e1d-499e-a9dd-9fcd12b4fab9"),
		UserID:    uuid.MustParse("93449e9d-4082-4305-8840-fa1673bcf915"),
		Username:  "joe",
		FirstName: "Joe",
		LastName:  "Bloggs",
		City:      "Dundee",
		County:    "Angus",
		Slogan:    "may the force be with you",
		CreatedAt: created,
		UpdatedAt: created,
	}

	row := ExtractProfile(p)

	if row.CreatedAt != "2017-03-12 00:00:00" {
		t.Errorf("created_at = %q, want %q", row.CreatedAt, "2017-03-12 00:00:00")
	}
	if row.UpdatedAt != "2017-03-12 00:00:00" {
		t.Errorf("updated_at = %q, want %q", row.UpdatedAt, "2017-03-12 00:00:00")
	}
	if len(row.ID) != 16 || len(row.UserID) != 16 {
		t.Errorf("uuid columns must be 16 bytes, got %d and %d", len(row.ID), len(row.UserID))
	}
}

func TestExtractProfileNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	p := &entity.Profile{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CreatedAt: time.Date(2017, 3, 12, 2, 0, 0, 0, loc),
		UpdatedAt: time.Date(2017, 3, 12, 2, 0, 0, 0, loc),
	}

	row := ExtractProfile(p)
	if row.CreatedAt != "2017-03-12 00:00:00" {
		t.Errorf("created_at = %q, want UTC-normalized %q", row.CreatedAt, "2017-03-12 00:00:00")
	}
}

func TestHydrateProfileRoundTrip(t *testing.T) {
	created := time.Date(2017, 3, 12, 0, 0, 0, 0, time.UTC)
	p := &entity.Profile{
		ID:        uuid.MustParse("b5acd30c-085e-4dee-b8a9-19e725dc62c3"),
		UserID:    uuid.MustParse("24306b5d-9107-4c26-bd55-d0ff6ac9382a"),
		Username:  "andrea",
		FirstName: "Andrea",
		LastName:  "Bocelli",
		City:      "Tuscany",
		County:    "Lajatico",
		Slogan:    "con te partiro",
		AvatarURL: "https://storage.googleapis.com/b/avatars/a.png",
		CreatedAt: created,
		UpdatedAt: created,
	}

	back, err := HydrateProfile(ExtractProfile(p))
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if back.ID != p.ID || back.UserID != p.UserID {
		t.Errorf("uuid mismatch after round trip")
	}
	if back.Username != p.Username || back.Slogan != p.Slogan || back.AvatarURL != p.AvatarURL {
		t.Errorf("field mismatch after round trip: %+v", back)
	}
	if !back.CreatedAt.Equal(created) || !back.UpdatedAt.Equal(created) {
		t.Errorf("timestamp mismatch: got %v / %v", back.CreatedAt, back.UpdatedAt)
	}
}

func TestHydrateProfileBadTimestamp(t *testing.T) {
	row := ExtractProfile(&entity.Profile{ID: uuid.New(), UserID: uuid.New()})
	row.CreatedAt = "12/03/2017"
	if _, err := HydrateProfile(row); err == nil {
		t.Fatal("expected error for malformed created_at")
	}
}
