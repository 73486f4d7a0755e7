package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/cocktales/cocktales-api/internal/interface/http"
	"github.com/cocktales/cocktales-api/internal/interface/middleware"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

// ProfileModule wires the profile routes under /api/v1/profile. Avatar upload
// requires an authenticated session.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, rdb *redis.Client, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), nil)

	profile := rg.Group("/v1/profile")
	{
		profile.POST("/create", writeLimiter, m.Handler.Create)
		profile.POST("/update", writeLimiter, m.Handler.Update)
		profile.GET("/search", m.Handler.Search)
		profile.GET("/:userId", m.Handler.Get)

		auth := profile.Group("/")
		auth.Use(middleware.Auth(m.Redis, m.JWT))
		{
			auth.POST("/avatar", writeLimiter, m.Handler.UploadAvatar)
		}
	}
}
