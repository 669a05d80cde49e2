package model

import (
	"time"
)

// Asset pairs an uploaded file's human name and content type with its
// object store key and public URL. Every asset is exclusively owned by
// whatever references it (a game bundle file, a screenshot, an avatar);
// deleting the asset must also remove its stored object, so rows are hard
// deleted rather than soft deleted.
type Asset struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Filename    string    `gorm:"column:filename;size:255" json:"filename"`
	Key         string    `gorm:"column:key;size:512;uniqueIndex" json:"key"`
	URL         string    `gorm:"column:url;type:text" json:"url"`
	ContentType string    `gorm:"column:content_type;size:128" json:"content_type"`
}

// TableName overrides gorm to use the asset table.
func (Asset) TableName() string {
	return "asset"
}
