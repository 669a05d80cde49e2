package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// TagDAO handles tag lookup and creation.
type TagDAO struct{}

func NewTagDAO() *TagDAO { return &TagDAO{} }

// TagCount is a tag text with the number of games carrying it.
type TagCount struct {
	Text  string
	Count int64
}

// GetOrCreate resolves a tag by its normalized text, creating it on first
// use. Callers must pass already-slugified text (naming.ParseTags); the
// unique index on text makes two identically normalized inputs resolve to
// the same row.
func (dao *TagDAO) GetOrCreate(ctx context.Context, db *gorm.DB, text string) (*model.Tag, error) {
	if text == "" {
		return nil, errors.New("tag text must not be empty")
	}
	var tag model.Tag
	if err := db.WithContext(ctx).
		Where(model.Tag{Text: text}).
		FirstOrCreate(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// TextContains returns tags whose normalized text contains the token.
func (dao *TagDAO) TextContains(ctx context.Context, db *gorm.DB, token string) ([]model.Tag, error) {
	var tags []model.Tag
	pattern := "%" + strings.ToLower(token) + "%"
	if err := db.WithContext(ctx).
		Where("text LIKE ?", pattern).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GameIDsForTag returns the IDs of games carrying the tag, optionally
// restricted to published games.
func (dao *TagDAO) GameIDsForTag(ctx context.Context, db *gorm.DB, tagID uint, publishedOnly bool) ([]uint, error) {
	var ids []uint
	query := db.WithContext(ctx).
		Table("game_tags").
		Joins("JOIN game ON game.id = game_tags.game_id").
		Where("game_tags.tag_id = ?", tagID)
	if publishedOnly {
		query = query.Where("game.published = ?", true)
	}
	if err := query.Pluck("game.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountGamesByToken returns, for every tag whose text contains the token,
// the number of associated games, most-used first. Tags with no games are
// omitted. Ties break on ascending tag text for deterministic output.
func (dao *TagDAO) CountGamesByToken(ctx context.Context, db *gorm.DB, token string, publishedOnly bool, limit int) ([]TagCount, error) {
	var counts []TagCount
	pattern := "%" + strings.ToLower(token) + "%"
	query := db.WithContext(ctx).
		Table("tag").
		Select("tag.text AS text, COUNT(game_tags.game_id) AS count").
		Joins("JOIN game_tags ON game_tags.tag_id = tag.id").
		Joins("JOIN game ON game.id = game_tags.game_id").
		Where("tag.text LIKE ?", pattern)
	if publishedOnly {
		query = query.Where("game.published = ?", true)
	}
	query = query.
		Group("tag.id").
		Order("count DESC, tag.text ASC").
		Limit(limit)
	if err := query.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
