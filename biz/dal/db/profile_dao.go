package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// ProfileDAO handles user profile rows.
type ProfileDAO struct{}

func NewProfileDAO() *ProfileDAO { return &ProfileDAO{} }

// GetByUser returns the user's profile, or gorm.ErrRecordNotFound.
func (dao *ProfileDAO) GetByUser(ctx context.Context, db *gorm.DB, userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := db.WithContext(ctx).
		Preload("Avatar").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first write, updating it afterwards.
func (dao *ProfileDAO) Upsert(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	if profile == nil {
		return errors.New("profile must not be nil")
	}
	var existing model.Profile
	err := db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.WithContext(ctx).Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	return db.WithContext(ctx).Model(&existing).
		Select("bio", "avatar_asset_id").
		Updates(profile).Error
}

// SetAvatar points the profile at a new avatar asset; nil clears the slot.
func (dao *ProfileDAO) SetAvatar(ctx context.Context, db *gorm.DB, profileID uint, assetID *uint) error {
	return db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", profileID).
		Update("avatar_asset_id", assetID).Error
}
