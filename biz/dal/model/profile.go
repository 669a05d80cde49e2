package model

// Profile is a user's public page. The avatar is a single replaceable
// slot backed by an exclusively owned asset, the same shape as a game's
// screenshot.
type Profile struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"uniqueIndex" json:"user_id"`
	Bio           string `gorm:"type:text" json:"bio"`
	AvatarAssetID *uint  `json:"avatar_asset_id,omitempty"`
	Avatar        *Asset `gorm:"foreignKey:AvatarAssetID" json:"avatar,omitempty"`
}

// TableName overrides gorm to use the profile table.
func (Profile) TableName() string {
	return "profile"
}
