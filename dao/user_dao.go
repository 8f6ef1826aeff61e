package dao

import (
	"errors"

	"devconnect/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser 创建新用户
func (dao *UserDAO) CreateUser(user *model.User) error {
	return dao.db.Create(user).Error
}

// GetByID 根据 ID 获取用户
func (dao *UserDAO) GetByID(id uint64) (*model.User, error) {
	var user model.User
	err := dao.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail 根据邮箱查询用户
func (dao *UserDAO) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := dao.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar sets the user's avatar and repairs the denormalized snapshot
// on every post and comment the user authored, in one transaction.
func (dao *UserDAO) UpdateAvatar(userID uint64, avatarURL string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", userID).
			Update("avatar_url", avatarURL).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Post{}).Where("user_id = ?", userID).
			Update("avatar_url", avatarURL).Error; err != nil {
			return err
		}
		return tx.Model(&model.Comment{}).Where("user_id = ?", userID).
			Update("avatar_url", avatarURL).Error
	})
}

// DeleteAccount removes the user and everything they own in one transaction:
// their comments and likes, their posts (likes/comments on those posts go
// with them), their profile with its experience/education, and finally the
// user row. Any failure rolls the whole cascade back.
func (dao *UserDAO) DeleteAccount(userID uint64) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		var postIDs []uint64
		if err := tx.Model(&model.Post{}).Where("user_id = ?", userID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&model.Post{}).Error; err != nil {
				return err
			}
		}
		var profile model.Profile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == nil {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&model.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&model.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&model.User{}, userID).Error
	})
}
