package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cocktales/cocktales-api/internal/cache"
	"github.com/cocktales/cocktales-api/internal/domain/entity"
	repo "github.com/cocktales/cocktales-api/internal/domain/repository"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

// ProfileService orchestrates profile persistence with a read-through Redis
// cache, best-effort Elasticsearch indexing and GCS avatar storage.
type ProfileService struct {
	Repo            repo.ProfileRepository
	Users           repo.UserRepository
	Cache           *cache.ProfileCache
	GCS             *storage.Client
	GCSBucket       string
	ES              *elasticsearch.Client
	ESProfilesIndex string
	Logger          *logrus.Logger
}

func NewProfileService(r repo.ProfileRepository, users repo.UserRepository, c *cache.ProfileCache, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esProfilesIndex string, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		Repo:            r,
		Users:           users,
		Cache:           c,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
		ES:              es,
		ESProfilesIndex: esProfilesIndex,
		Logger:          logger,
	}
}

type CreateProfileInput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	FirstName string
	LastName  string
	City      string
	County    string
	Slogan    string
}

// CreateProfile stores a profile for an existing user. The owning user must
// exist; a repository NotFoundError for the user id propagates unchanged.
func (s *ProfileService) CreateProfile(ctx context.Context, in CreateProfileInput) (*entity.Profile, error) {
	if _, err := s.Users.GetUserByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	p := &entity.Profile{
		ID:        id,
		UserID:    in.UserID,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		City:      in.City,
		County:    in.County,
		Slogan:    in.Slogan,
	}
	if err := s.Repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, p); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", p.UserID).Warn("profile cache set failed")
		}
	}
	_ = s.indexProfile(ctx, p)
	return p, nil
}

// GetProfileByUserID returns the profile owned by userID, reading through the
// cache when one is configured.
func (s *ProfileService) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if s.Cache != nil {
		if p, err := s.Cache.Get(ctx, userID); err == nil && p != nil {
			return p, nil
		}
	}
	p, err := s.Repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, p); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache set failed")
		}
	}
	return p, nil
}

type UpdateProfileInput struct {
	UserID    uuid.UUID
	Username  string
	FirstName string
	LastName  string
	City      string
	County    string
	Slogan    string
}

// UpdateProfile applies the non-empty fields of in to the stored profile.
// An absent profile fails with the repository's update NotFoundError.
func (s *ProfileService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*entity.Profile, error) {
	p, err := s.Repo.GetProfileByUserID(ctx, in.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, repo.ErrProfileUpdateNotFound(in.UserID)
		}
		return nil, err
	}
	if in.Username != "" {
		p.Username = in.Username
	}
	if in.FirstName != "" {
		p.FirstName = in.FirstName
	}
	if in.LastName != "" {
		p.LastName = in.LastName
	}
	if in.City != "" {
		p.City = in.City
	}
	if in.County != "" {
		p.County = in.County
	}
	if in.Slogan != "" {
		p.Slogan = in.Slogan
	}
	if err := s.Repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, p.UserID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", p.UserID).Warn("profile cache invalidate failed")
		}
	}
	_ = s.indexProfile(ctx, p)
	return p, nil
}

// UploadAvatar stores the image in GCS and records its public URL on the
// owner's profile.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID.String(), uuid.NewString()+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	p.AvatarURL = url
	if err := s.Repo.UpdateProfile(ctx, p); err != nil {
		return "", err
	}
	if s.Cache != nil {
		_ = s.Cache.Invalidate(ctx, p.UserID)
	}
	_ = s.indexProfile(ctx, p)
	return url, nil
}

func (s *ProfileService) indexProfile(ctx context.Context, p *entity.Profile) error {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         p.ID.String(),
		"user_id":    p.UserID.String(),
		"username":   p.Username,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"city":       p.City,
		"county":     p.County,
		"slogan":     p.Slogan,
		"updated_at": p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProfilesIndex, DocumentID: p.ID.String(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("profile_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("profile_id", p.ID).Warn("es index response error")
	}
	return nil
}

// SearchProfiles performs a multi_match search over username, name and slogan.
func (s *ProfileService) SearchProfiles(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"username^2", "first_name", "last_name", "slogan"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESProfilesIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
