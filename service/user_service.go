package service

import (
	"errors"

	"devconnect/dao"
	"devconnect/internal/apperr"
	"devconnect/internal/auth"
	"devconnect/internal/gravatar"
	"devconnect/model"
	"devconnect/utils"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// UserService handles registration, login and the avatar reconciliation
// flow. Both success paths hand back a signed identity token.
type UserService struct {
	dao *dao.UserDAO
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(dao *dao.UserDAO) *UserService {
	return &UserService{dao: dao}
}

// Register creates the user with a hashed password and a Gravatar-derived
// avatar, then issues a token. A duplicate email fails as a validation
// error so the client renders it alongside field errors.
func (s *UserService) Register(name, email, password string) (string, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", apperr.Internal(err)
	}
	user := &model.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		AvatarURL: gravatar.URL(email),
	}
	if err := s.dao.CreateUser(user); err != nil {
		if isDuplicateKey(err) {
			return "", apperr.Validation("User already added")
		}
		return "", apperr.Internal(err)
	}
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error so neither case is probeable.
func (s *UserService) Login(email, password string) (string, error) {
	user, err := s.dao.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Unauthenticated("Invalid credentials")
		}
		return "", apperr.Internal(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", apperr.Unauthenticated("Invalid credentials")
	}
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

// Get returns the caller's user record. The password hash never serializes.
func (s *UserService) Get(userID uint64) (*model.User, error) {
	user, err := s.dao.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// UpdateAvatar sets a new avatar and repairs the snapshot copies on the
// user's existing posts and comments in the same transaction.
func (s *UserService) UpdateAvatar(userID uint64, avatar string) (*model.User, error) {
	normalized, err := normalizeURL(avatar)
	if err != nil {
		return nil, apperr.Validation("Avatar must be a valid URL")
	}
	if err := s.dao.UpdateAvatar(userID, normalized); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(userID)
}

// isDuplicateKey reports whether err is a unique-constraint violation, in
// either gorm's translated form or the raw MySQL 1062 error.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
