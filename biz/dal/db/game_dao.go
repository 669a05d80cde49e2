package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// GameDAO handles CRUD and query operations for games.
type GameDAO struct{}

func NewGameDAO() *GameDAO { return &GameDAO{} }

func (dao *GameDAO) Create(ctx context.Context, db *gorm.DB, game *model.Game) error {
	if game == nil {
		return errors.New("game must not be nil")
	}
	return db.WithContext(ctx).Create(game).Error
}

func (dao *GameDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.Game, error) {
	var game model.Game
	if err := db.WithContext(ctx).
		Preload("Tags").
		Preload("Owner").
		First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (dao *GameDAO) Update(ctx context.Context, db *gorm.DB, game *model.Game) error {
	if game == nil {
		return errors.New("game must not be nil")
	}
	result := db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ?", game.ID).
		Select("title", "description", "published", "frame_width", "frame_height").
		Updates(game)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a game row and its tag associations. Tags themselves are
// never deleted here; they outlive the games that use them.
func (dao *GameDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	game := model.Game{ID: id}
	if err := db.WithContext(ctx).Model(&game).Association("Tags").Clear(); err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&game).Error
}

// IncrementViews bumps the view counter with a single atomic SQL update.
// Concurrent viewers must never lose increments, so the counter is not
// read into memory first.
func (dao *GameDAO) IncrementViews(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ?", id).
		UpdateColumn("times_viewed", gorm.Expr("times_viewed + ?", 1)).Error
}

// ReplaceTags swaps the game's tag set for the given tags.
func (dao *GameDAO) ReplaceTags(ctx context.Context, db *gorm.DB, game *model.Game, tags []*model.Tag) error {
	if game == nil {
		return errors.New("game must not be nil")
	}
	return db.WithContext(ctx).Model(game).Association("Tags").Replace(tags)
}

// ListPublished returns published games ordered by popularity.
func (dao *GameDAO) ListPublished(ctx context.Context, db *gorm.DB) ([]model.Game, error) {
	var games []model.Game
	if err := db.WithContext(ctx).
		Where("published = ?", true).
		Order("times_viewed DESC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// ListByOwner returns every game owned by the given user.
func (dao *GameDAO) ListByOwner(ctx context.Context, db *gorm.DB, ownerID uint) ([]model.Game, error) {
	var games []model.Game
	if err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// PublishedIDsByTitleToken returns IDs of published games whose title
// contains the token, case-insensitively.
func (dao *GameDAO) PublishedIDsByTitleToken(ctx context.Context, db *gorm.DB, token string) ([]uint, error) {
	var ids []uint
	pattern := "%" + strings.ToLower(token) + "%"
	if err := db.WithContext(ctx).
		Model(&model.Game{}).
		Where("published = ? AND lower(title) LIKE ?", true, pattern).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// PublishedIDsByOwner returns IDs of published games owned by the user.
func (dao *GameDAO) PublishedIDsByOwner(ctx context.Context, db *gorm.DB, ownerID uint) ([]uint, error) {
	var ids []uint
	if err := db.WithContext(ctx).
		Model(&model.Game{}).
		Where("published = ? AND owner_id = ?", true, ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
