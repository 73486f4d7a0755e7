package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/cocktales/cocktales-api/internal/interface/http"
	"github.com/cocktales/cocktales-api/internal/interface/middleware"
	"github.com/cocktales/cocktales-api/pkg/helpers"
)

// AuthModule wires session routes under /api/v1/auth.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	refreshLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), nil)

	auth := rg.Group("/v1/auth")
	{
		auth.POST("/login", loginLimiter, m.Handler.Login)
		auth.POST("/refresh", refreshLimiter, m.Handler.Refresh)

		protected := auth.Group("/")
		protected.Use(middleware.Auth(m.Redis, m.JWT))
		{
			protected.POST("/logout", m.Handler.Logout)
		}
	}
}
