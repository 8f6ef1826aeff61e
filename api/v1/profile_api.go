package v1

import (
	"net/http"

	"devconnect/api/v1/request"
	"devconnect/internal/apperr"
	"devconnect/middleware"
	"devconnect/service"

	"github.com/gin-gonic/gin"
)

// ProfileAPI exposes HTTP handlers for profile reads, the upsert, the
// experience/education sub-lists, the GitHub proxy and account deletion.
type ProfileAPI struct {
	service *service.ProfileService
	github  *service.GithubService
}

// NewProfileAPI wires the service layer into the HTTP handlers.
func NewProfileAPI(s *service.ProfileService, g *service.GithubService) *ProfileAPI {
	return &ProfileAPI{service: s, github: g}
}

// Me returns the caller's profile.
func (p *ProfileAPI) Me(c *gin.Context) {
	profile, err := p.service.GetMe(middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Upsert creates or merge-updates the caller's profile in one atomic step.
func (p *ProfileAPI) Upsert(c *gin.Context) {
	var req request.UpsertProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := p.service.Upsert(middleware.UserID(c), &req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// List returns every profile, public.
func (p *ProfileAPI) List(c *gin.Context) {
	profiles, err := p.service.List()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ByUserID returns one profile by its owner's user id, public. A
// malformed id reads the same as a missing profile.
func (p *ProfileAPI) ByUserID(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		apperr.Respond(c, apperr.NotFound("Profile not found", http.StatusBadRequest))
		return
	}
	profile, err := p.service.GetByUserID(userID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Delete cascades: the caller's posts, profile and user go together.
func (p *ProfileAPI) Delete(c *gin.Context) {
	if err := p.service.DeleteAccount(middleware.UserID(c)); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

// AddExperience prepends an experience entry and returns the profile.
func (p *ProfileAPI) AddExperience(c *gin.Context) {
	var req request.ExperienceRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := p.service.AddExperience(middleware.UserID(c), &req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes an experience entry by id.
func (p *ProfileAPI) RemoveExperience(c *gin.Context) {
	expID, ok := pathID(c, "exp_id")
	if !ok {
		apperr.Respond(c, apperr.BadRequest("Invalid experience id"))
		return
	}
	profile, err := p.service.RemoveExperience(middleware.UserID(c), expID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddEducation prepends an education entry and returns the profile.
func (p *ProfileAPI) AddEducation(c *gin.Context) {
	var req request.EducationRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := p.service.AddEducation(middleware.UserID(c), &req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveEducation deletes an education entry by id.
func (p *ProfileAPI) RemoveEducation(c *gin.Context) {
	eduID, ok := pathID(c, "edu_id")
	if !ok {
		apperr.Respond(c, apperr.BadRequest("Invalid education id"))
		return
	}
	profile, err := p.service.RemoveEducation(middleware.UserID(c), eduID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GithubRepos proxies the user's five most recently listed repositories.
func (p *ProfileAPI) GithubRepos(c *gin.Context) {
	repos, err := p.github.Repos(c.Param("username"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, repos)
}
