package router

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cocktales/cocktales-api/config"
	userapp "github.com/cocktales/cocktales-api/internal/application"
	"github.com/cocktales/cocktales-api/internal/cache"
	pginfra "github.com/cocktales/cocktales-api/internal/infrastructure/postgres"
	handlers "github.com/cocktales/cocktales-api/internal/interface/http"
	"github.com/cocktales/cocktales-api/internal/router/modules"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

// Deps carries the shared infrastructure wired at startup. Dependencies are
// passed explicitly; optional ones (Redis, GCS, ES, Pub) may be nil and the
// services degrade gracefully.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
	GCS    *storage.Client
	ES     *elasticsearch.Client
	Pub    *helpers.RabbitPublisher
}

// InitModules builds repositories, services and handlers and registers all
// feature modules with the registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	userRepo := pginfra.NewUserRepository(d.Pool)
	profileRepo := pginfra.NewProfileRepository(d.Pool)

	var profileCache *cache.ProfileCache
	if d.Redis != nil {
		profileCache = cache.NewProfileCache(d.Redis, d.Cfg.ProfileCacheTTL)
	}

	userSvc := userapp.NewUserService(userRepo, d.Pub, d.Logger)
	profileSvc := userapp.NewProfileService(profileRepo, userRepo, profileCache, d.GCS, d.Cfg.GCSBucket, d.ES, d.Cfg.ESProfilesIndex, d.Logger)
	authSvc := userapp.NewAuthService(userRepo, d.JWT, d.Redis, d.Logger)

	userHandler := handlers.NewUserHandler(userSvc, d.Logger)
	profileHandler := handlers.NewProfileHandler(profileSvc, d.Logger)
	authHandler := handlers.NewAuthHandler(authSvc, d.Logger, d.Cfg.CookieDomain, d.Cfg.CookieSecure)

	r.Add(modules.NewUserModule(userHandler, d.Redis))
	r.Add(modules.NewProfileModule(profileHandler, d.Redis, d.JWT))
	r.Add(modules.NewAuthModule(authHandler, d.Redis, d.JWT))
}
