package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// AssetDAO handles CRUD operations for stored-file records.
type AssetDAO struct{}

func NewAssetDAO() *AssetDAO { return &AssetDAO{} }

func (dao *AssetDAO) Create(ctx context.Context, db *gorm.DB, asset *model.Asset) error {
	if asset == nil {
		return errors.New("asset must not be nil")
	}
	if asset.Key == "" {
		return errors.New("asset key must not be empty")
	}
	return db.WithContext(ctx).Create(asset).Error
}

func (dao *AssetDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.Asset, error) {
	var asset model.Asset
	if err := db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (dao *AssetDAO) GetByKey(ctx context.Context, db *gorm.DB, key string) (*model.Asset, error) {
	var asset model.Asset
	if err := db.WithContext(ctx).Where("key = ?", key).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteByID removes the record. Asset rows are hard deleted; the caller
// is responsible for the stored object.
func (dao *AssetDAO) DeleteByID(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&model.Asset{}, id).Error
}
