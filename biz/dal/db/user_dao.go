package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// UserDAO handles lookup operations for creator accounts.
type UserDAO struct{}

func NewUserDAO() *UserDAO { return &UserDAO{} }

func (dao *UserDAO) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	if user == nil {
		return errors.New("user must not be nil")
	}
	if user.Username == "" {
		return errors.New("username must not be empty")
	}
	return db.WithContext(ctx).Create(user).Error
}

func (dao *UserDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameContains returns users whose username contains the token,
// case-insensitively.
func (dao *UserDAO) UsernameContains(ctx context.Context, db *gorm.DB, token string) ([]model.User, error) {
	var users []model.User
	pattern := "%" + strings.ToLower(token) + "%"
	if err := db.WithContext(ctx).
		Where("lower(username) LIKE ?", pattern).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
