package model

// Screenshot is a game's display image. A game holds at most one active
// screenshot at any time; the service layer enforces the single slot.
// The asset is exclusively owned: destroying the screenshot destroys its
// asset row and stored object, which every caller must do explicitly
// through the service (no implicit on-delete hooks).
type Screenshot struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GameID  uint   `gorm:"index" json:"game_id"`
	AssetID uint   `gorm:"uniqueIndex" json:"asset_id"`
	Asset   *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

// TableName overrides gorm to use the screenshot table.
func (Screenshot) TableName() string {
	return "screenshot"
}
