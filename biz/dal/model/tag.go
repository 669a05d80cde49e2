package model

// Tag is a searchable hashtag attached to games. Text is stored in
// normalized slug form; TagDAO.GetOrCreate is the only creation path, so
// two raw inputs that normalize identically always share one row.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"size:64;uniqueIndex" json:"text"`

	Games []*Game `gorm:"many2many:game_tags" json:"-"`
}

// TableName overrides gorm to use the tag table.
func (Tag) TableName() string {
	return "tag"
}
