package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/cocktales/cocktales-api/internal/application"
	"github.com/cocktales/cocktales-api/internal/domain/entity"
	repo "github.com/cocktales/cocktales-api/internal/domain/repository"
	"github.com/cocktales/cocktales-api/pkg/response"
	"github.com/cocktales/cocktales-api/pkg/validation"
)

// User-facing failure messages. The update-not-found case is deliberately
// generic so the endpoint does not reveal whether an account exists.
const (
	MsgEmailTaken       = "A user has already registered with this email address"
	MsgPasswordMismatch = "Password does not match the password on record - please try again"
	MsgUnableToProcess  = "Unable to process request - please try again"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type updateUserRequest struct {
	ID          string `json:"id" binding:"required,uuid"`
	Email       string `json:"email" binding:"required,email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type deleteUserRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":    u.ID.String(),
		"email": u.Email,
	}
}

// Create registers a new account.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, gin.H{"error": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			response.FailMsg(c, MsgEmailTaken)
			return
		}
		h.Logger.WithError(err).WithField("email", req.Email).Error("user create failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"user": userJSON(u)})
}

// Update applies an account change: email and/or password. Business failures
// travel back as JSEND fail envelopes with HTTP 200.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, gin.H{"error": "invalid payload", "details": validation.ToDetails(err)})
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.FailMsg(c, MsgUnableToProcess)
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), userapp.UpdateUserInput{
		ID:          id,
		Email:       req.Email,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch {
		case repo.IsNotFound(err):
			response.FailMsg(c, MsgUnableToProcess)
		case errors.Is(err, userapp.ErrEmailTaken):
			response.FailMsg(c, MsgEmailTaken)
		case errors.Is(err, userapp.ErrPasswordMismatch):
			response.FailMsg(c, MsgPasswordMismatch)
		default:
			h.Logger.WithError(err).WithField("user_id", req.ID).Error("user update failed")
			response.Error(c, "internal server error")
		}
		return
	}
	response.Success(c, gin.H{"user": userJSON(u)})
}

// Get fetches a user by id. Unlike Update, the not-found message is surfaced
// verbatim.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.FailMsg(c, "invalid user id")
		return
	}
	u, err := h.Svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if repo.IsNotFound(err) {
			response.FailMsg(c, err.Error())
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("user fetch failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"user": userJSON(u)})
}

// Delete removes a user by id; an absent id fails fast.
func (h *UserHandler) Delete(c *gin.Context) {
	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, gin.H{"error": "invalid payload", "details": validation.ToDetails(err)})
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.FailMsg(c, "invalid user id")
		return
	}
	if err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		if repo.IsNotFound(err) {
			response.FailMsg(c, err.Error())
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("user delete failed")
		response.Error(c, "internal server error")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
