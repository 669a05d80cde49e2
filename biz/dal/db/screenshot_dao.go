package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// ScreenshotDAO handles the game → screenshot association.
type ScreenshotDAO struct{}

func NewScreenshotDAO() *ScreenshotDAO { return &ScreenshotDAO{} }

func (dao *ScreenshotDAO) Create(ctx context.Context, db *gorm.DB, shot *model.Screenshot) error {
	if shot == nil {
		return errors.New("screenshot must not be nil")
	}
	return db.WithContext(ctx).Create(shot).Error
}

// GetByGame returns the game's screenshot, or gorm.ErrRecordNotFound when
// the slot is empty.
func (dao *ScreenshotDAO) GetByGame(ctx context.Context, db *gorm.DB, gameID uint) (*model.Screenshot, error) {
	var shot model.Screenshot
	if err := db.WithContext(ctx).
		Preload("Asset").
		Where("game_id = ?", gameID).
		First(&shot).Error; err != nil {
		return nil, err
	}
	return &shot, nil
}

func (dao *ScreenshotDAO) DeleteByID(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&model.Screenshot{}, id).Error
}
