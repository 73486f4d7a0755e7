package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cocktales/cocktales-api/config"
	"github.com/cocktales/cocktales-api/internal/domain/entity"
	pginfra "github.com/cocktales/cocktales-api/internal/infrastructure/postgres"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "joe@mail.com"
	password := "password"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	ur := pginfra.ExtractUser(user)

	if _, err := db.Exec(`
		INSERT INTO "user" (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, ur.ID, ur.Email, ur.PasswordHash); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", user.ID, email, password)

	now := time.Now().UTC().Truncate(time.Second)
	profile := &entity.Profile{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  "joe",
		FirstName: "Joe",
		LastName:  "Bloggs",
		City:      "Dundee",
		County:    "Angus",
		Slogan:    "may the force be with you",
		CreatedAt: now,
		UpdatedAt: now,
	}
	pr := pginfra.ExtractProfile(profile)

	if _, err := db.Exec(`
		INSERT INTO user_profile (id, user_id, username, first_name, last_name, city, county, slogan, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			city = EXCLUDED.city,
			county = EXCLUDED.county,
			slogan = EXCLUDED.slogan,
			updated_at = EXCLUDED.updated_at
	`, pr.ID, pr.UserID, pr.Username, pr.FirstName, pr.LastName, pr.City, pr.County, pr.Slogan, pr.AvatarURL, pr.CreatedAt, pr.UpdatedAt); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s username=%s\n", profile.ID, profile.Username)
}
