package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/cocktales/cocktales-api/internal/interface/http"
	"github.com/cocktales/cocktales-api/internal/interface/middleware"
)

// UserModule wires the account CRUD routes under /api/v1/user.
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), nil)

	user := rg.Group("/v1/user")
	{
		user.POST("/create", createLimiter, m.Handler.Create)
		user.POST("/update", writeLimiter, m.Handler.Update)
		user.POST("/delete", writeLimiter, m.Handler.Delete)
		user.GET("/:id", m.Handler.Get)
	}
}
