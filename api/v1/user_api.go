package v1

import (
	"net/http"

	"devconnect/api/v1/request"
	"devconnect/internal/apperr"
	"devconnect/internal/metrics"
	"devconnect/middleware"
	"devconnect/service"

	"github.com/gin-gonic/gin"
)

// UserAPI exposes HTTP handlers for registration, login and the
// authenticated user record.
type UserAPI struct {
	service *service.UserService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// Register handles new account creation and returns a signed token.
func (u *UserAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if !bindJSON(c, &req) {
		metrics.IncRegister("bad_request")
		return
	}
	token, err := u.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		metrics.IncRegister("failed")
		apperr.Respond(c, err)
		return
	}
	metrics.IncRegister("success")
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login validates credentials and returns a signed token.
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(c, &req) {
		metrics.IncLogin("bad_request")
		return
	}
	token, err := u.service.Login(req.Email, req.Password)
	if err != nil {
		metrics.IncLogin("unauthorized")
		apperr.Respond(c, err)
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the caller's user record, password excluded.
func (u *UserAPI) Me(c *gin.Context) {
	user, err := u.service.Get(middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAvatar sets a new avatar and repairs the denormalized snapshots on
// the caller's posts and comments.
func (u *UserAPI) UpdateAvatar(c *gin.Context) {
	var req request.UpdateAvatarRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := u.service.UpdateAvatar(middleware.UserID(c), req.Avatar)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
