package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/cocktales/cocktales-api/internal/application"
	"github.com/cocktales/cocktales-api/internal/domain/entity"
	repo "github.com/cocktales/cocktales-api/internal/domain/repository"
	"github.com/cocktales/cocktales-api/internal/interface/middleware"
	"github.com/cocktales/cocktales-api/pkg/response"
	"github.com/cocktales/cocktales-api/pkg/validation"
)

type ProfileHandler struct {
	Svc    *userapp.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *userapp.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	ID        string `json:"id" binding:"omitempty,uuid"`
	UserID    string `json:"userId" binding:"required,uuid"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	City      string `json:"city"`
	County    string `json:"county"`
	Slogan    string `json:"slogan"`
}

type updateProfileRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	City      string `json:"city"`
	County    string `json:"county"`
	Slogan    string `json:"slogan"`
}

func profileJSON(p *entity.Profile) gin.H {
	return gin.H{
		"id":        p.ID.String(),
		"userId":    p.UserID.String(),
		"username":  p.Username,
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"city":      p.City,
		"county":    p.County,
		"slogan":    p.Slogan,
		"avatarUrl": p.AvatarURL,
		"createdAt": p.CreatedAt,
		"updatedAt": p.UpdatedAt,
	}
}

// Create stores a profile for an existing user.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, gin.H{"error": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.FailMsg(c, "invalid user id")
		return
	}
	in := userapp.CreateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		County:    req.County,
		Slogan:    req.Slogan,
	}
	if req.ID != "" {
		if id, err := uuid.Parse(req.ID); err == nil {
			in.ID = id
		}
	}

	p, err := h.Svc.CreateProfile(c.Request.Context(), in)
	if err != nil {
		if repo.IsNotFound(err) {
			response.FailMsg(c, err.Error())
			return
		}
		h.Logger.WithError(err).WithField("user_id", req.UserID).Error("profile create failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"profile": profileJSON(p)})
}

// Update applies the non-empty fields of the request to the stored profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, gin.H{"error": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.FailMsg(c, "invalid user id")
		return
	}
	p, err := h.Svc.UpdateProfile(c.Request.Context(), userapp.UpdateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		County:    req.County,
		Slogan:    req.Slogan,
	})
	if err != nil {
		if repo.IsNotFound(err) {
			response.FailMsg(c, err.Error())
			return
		}
		h.Logger.WithError(err).WithField("user_id", req.UserID).Error("profile update failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"profile": profileJSON(p)})
}

// Get fetches the profile owned by the user id in the path.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.FailMsg(c, "invalid user id")
		return
	}
	p, err := h.Svc.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		if repo.IsNotFound(err) {
			response.FailMsg(c, err.Error())
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("profile fetch failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"profile": profileJSON(p)})
}

// Search queries the profile index.
func (h *ProfileHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.FailMsg(c, "missing query")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchProfiles(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).WithField("query", q).Error("profile search failed")
		response.Error(c, "search unavailable")
		return
	}
	response.Success(c, gin.H{"profiles": hits})
}

// UploadAvatar stores a new avatar image for the authenticated user.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	userID, err := uuid.Parse(uid)
	if err != nil {
		response.FailMsg(c, "invalid session")
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.FailMsg(c, "missing avatar file")
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), userID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if repo.IsNotFound(err) {
			response.FailMsg(c, err.Error())
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("avatar upload failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"avatarUrl": url})
}
