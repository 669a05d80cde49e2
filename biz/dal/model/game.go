package model

import (
	"time"
)

// Game represents a user-uploaded playable game.
type Game struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"size:128" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"index" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Published   bool      `gorm:"default:false" json:"published"`

	// TimesViewed is only ever written through GameDAO.IncrementViews,
	// which issues an atomic SQL increment. Never read-modify-write it.
	TimesViewed int64 `gorm:"default:0" json:"times_viewed"`

	// Frame dimensions for the game's iframe; -1 means use the full view.
	FrameWidth  int `gorm:"default:640" json:"frame_width"`
	FrameHeight int `gorm:"default:480" json:"frame_height"`

	Tags []*Tag `gorm:"many2many:game_tags" json:"tags,omitempty"`
}

// TableName overrides gorm to use the game table.
func (Game) TableName() string {
	return "game"
}
