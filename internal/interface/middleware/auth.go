package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cocktales/cocktales-api/pkg/helpers"
	"github.com/cocktales/cocktales-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the access token cookie and, when Redis is available,
// checks that the token's session is still the active one. It sets userID in
// the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.FailAbort(c, http.StatusUnauthorized, gin.H{"error": "missing access token"})
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.FailAbort(c, http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
				response.FailAbort(c, http.StatusUnauthorized, gin.H{"error": "session not found"})
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
