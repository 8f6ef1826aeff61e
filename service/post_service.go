package service

import (
	"errors"

	"devconnect/dao"
	"devconnect/internal/apperr"
	"devconnect/model"

	"gorm.io/gorm"
)

// PostService owns the post feed: creation with author snapshots, the like
// toggle, and ownership-gated deletion of posts and comments.
type PostService struct {
	dao   *dao.PostDAO
	users *dao.UserDAO
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(dao *dao.PostDAO, users *dao.UserDAO) *PostService {
	return &PostService{dao: dao, users: users}
}

// Create stores a new post carrying a snapshot of the author's current
// name and avatar. Later profile changes do not rewrite old posts; the
// avatar reconciliation flow does that explicitly.
func (s *PostService) Create(userID uint64, text string) (*model.Post, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	post := &model.Post{
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
	if err := s.dao.CreatePost(post); err != nil {
		return nil, apperr.Internal(err)
	}
	post.Likes = []model.Like{}
	post.Comments = []model.Comment{}
	return post, nil
}

// List 获取全部动态, 最新在前
func (s *PostService) List() ([]model.Post, error) {
	posts, err := s.dao.List()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return posts, nil
}

// Get 根据 ID 获取动态
func (s *PostService) Get(postID uint64) (*model.Post, error) {
	post, err := s.dao.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, apperr.Internal(err)
	}
	return post, nil
}

// Delete removes a post. Existence is checked before ownership, so a
// missing post never reports as a permission problem.
func (s *PostService) Delete(postID, requesterID uint64) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return apperr.Forbidden("User not authorized")
	}
	if err := s.dao.DeletePost(postID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Like adds the caller to the post's like list and returns the updated
// list. The unique index makes a concurrent duplicate lose cleanly.
func (s *PostService) Like(postID, userID uint64) ([]model.Like, error) {
	if _, err := s.Get(postID); err != nil {
		return nil, err
	}
	like := &model.Like{PostID: postID, UserID: userID}
	if err := s.dao.AddLike(like); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.BadRequest("Post already liked")
		}
		return nil, apperr.Internal(err)
	}
	return s.likes(postID)
}

// Unlike removes the caller's like and returns the updated list.
func (s *PostService) Unlike(postID, userID uint64) ([]model.Like, error) {
	if _, err := s.Get(postID); err != nil {
		return nil, err
	}
	removed, err := s.dao.RemoveLike(postID, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if removed == 0 {
		return nil, apperr.BadRequest("Post has not yet been liked")
	}
	return s.likes(postID)
}

// AddComment prepends a comment with an author snapshot and returns the
// updated comment list.
func (s *PostService) AddComment(postID, userID uint64, text string) ([]model.Comment, error) {
	if _, err := s.Get(postID); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	comment := &model.Comment{
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
	if err := s.dao.AddComment(comment); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.comments(postID)
}

// DeleteComment removes a comment that the requester authored. Removal is
// keyed by the comment's own id, never by the requester id, so deleting
// one of several comments by the same author takes out the right one.
func (s *PostService) DeleteComment(postID, commentID, requesterID uint64) ([]model.Comment, error) {
	if _, err := s.Get(postID); err != nil {
		return nil, err
	}
	comment, err := s.dao.GetComment(postID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Comment does not exist")
		}
		return nil, apperr.Internal(err)
	}
	if comment.UserID != requesterID {
		return nil, apperr.Forbidden("User not authorized")
	}
	if err := s.dao.DeleteComment(postID, commentID); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.comments(postID)
}

func (s *PostService) likes(postID uint64) ([]model.Like, error) {
	likes, err := s.dao.ListLikes(postID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return likes, nil
}

func (s *PostService) comments(postID uint64) ([]model.Comment, error) {
	comments, err := s.dao.ListComments(postID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return comments, nil
}
