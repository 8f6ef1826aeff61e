package dao

import (
	"devconnect/model"

	"gorm.io/gorm"
)

type PostDAO struct {
	db *gorm.DB
}

// NewPostDAO 创建一个新的 PostDAO 实例
func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// CreatePost 创建新动态
func (dao *PostDAO) CreatePost(post *model.Post) error {
	return dao.db.Create(post).Error
}

// List 获取全部动态, 最新在前
func (dao *PostDAO) List() ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Preload("Likes", subListOrder).
		Preload("Comments", subListOrder).
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// GetByID 根据 ID 获取动态
func (dao *PostDAO) GetByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := dao.db.Preload("Likes", subListOrder).
		Preload("Comments", subListOrder).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post together with its likes and comments.
func (dao *PostDAO) DeletePost(postID uint64) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postID).Error
	})
}

// AddLike inserts a like. The (post_id, user_id) unique index turns a
// duplicate like into a duplicate-key error for the caller to classify.
func (dao *PostDAO) AddLike(like *model.Like) error {
	return dao.db.Create(like).Error
}

// RemoveLike 删除指定用户对动态的点赞, 返回删除的行数
func (dao *PostDAO) RemoveLike(postID, userID uint64) (int64, error) {
	res := dao.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

// ListLikes 获取动态的点赞列表, 最新在前
func (dao *PostDAO) ListLikes(postID uint64) ([]model.Like, error) {
	var likes []model.Like
	err := dao.db.Where("post_id = ?", postID).Order("id DESC").Find(&likes).Error
	return likes, err
}

// AddComment 新增评论
func (dao *PostDAO) AddComment(comment *model.Comment) error {
	return dao.db.Create(comment).Error
}

// GetComment 获取动态下的指定评论
func (dao *PostDAO) GetComment(postID, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := dao.db.Where("post_id = ? AND id = ?", postID, commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment by its own id, scoped to the post.
func (dao *PostDAO) DeleteComment(postID, commentID uint64) error {
	return dao.db.Where("post_id = ? AND id = ?", postID, commentID).
		Delete(&model.Comment{}).Error
}

// ListComments 获取动态的评论列表, 最新在前
func (dao *PostDAO) ListComments(postID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := dao.db.Where("post_id = ?", postID).Order("id DESC").Find(&comments).Error
	return comments, err
}
