package v1

import (
	"net/http"

	"devconnect/api/v1/request"
	"devconnect/internal/apperr"
	"devconnect/middleware"
	"devconnect/service"

	"github.com/gin-gonic/gin"
)

// PostAPI exposes HTTP handlers for the post feed, likes and comments.
type PostAPI struct {
	service *service.PostService
}

// NewPostAPI wires the service layer into the HTTP handlers.
func NewPostAPI(s *service.PostService) *PostAPI {
	return &PostAPI{service: s}
}

// postID reads the :id parameter; a malformed id reads as a missing post.
func postID(c *gin.Context) (uint64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		apperr.Respond(c, apperr.NotFound("Post not found"))
	}
	return id, ok
}

// Create stores a new post by the caller.
func (p *PostAPI) Create(c *gin.Context) {
	var req request.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := p.service.Create(middleware.UserID(c), req.Text)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// List returns every post, newest first.
func (p *PostAPI) List(c *gin.Context) {
	posts, err := p.service.List()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get returns one post by id.
func (p *PostAPI) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	post, err := p.service.Get(id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes the caller's own post.
func (p *PostAPI) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	if err := p.service.Delete(id, middleware.UserID(c)); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

// Like adds the caller's like and returns the updated like list.
func (p *PostAPI) Like(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	likes, err := p.service.Like(id, middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// Unlike removes the caller's like and returns the updated like list.
func (p *PostAPI) Unlike(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	likes, err := p.service.Unlike(id, middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// AddComment appends a comment and returns the updated comment list.
func (p *PostAPI) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req request.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comments, err := p.service.AddComment(id, middleware.UserID(c), req.Text)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment removes the caller's own comment and returns the updated
// comment list.
func (p *PostAPI) DeleteComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		apperr.Respond(c, apperr.NotFound("Comment does not exist"))
		return
	}
	comments, err := p.service.DeleteComment(id, commentID, middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
