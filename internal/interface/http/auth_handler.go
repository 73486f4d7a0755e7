package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/cocktales/cocktales-api/internal/application"
	"github.com/cocktales/cocktales-api/internal/interface/middleware"
	"github.com/cocktales/cocktales-api/pkg/helpers"
	"github.com/cocktales/cocktales-api/pkg/response"
	"github.com/cocktales/cocktales-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *userapp.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *userapp.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates and sets the token pair as HttpOnly cookies.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, gin.H{"error": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FailMsg(c, "invalid credentials")
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, gin.H{"user": userJSON(u)})
}

// Refresh rotates the token pair using the refresh_token cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.FailMsg(c, "missing refresh token")
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.FailMsg(c, "invalid refresh token")
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, gin.H{"refreshed": true})
}

// Logout clears the cookies and drops the recorded session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	h.Cookies.Clear(c)
	response.Success(c, gin.H{"loggedOut": true})
}
