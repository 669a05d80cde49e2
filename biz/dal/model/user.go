package model

import (
	"time"
)

// User is a creator account. Authentication lives outside this service;
// only the identity and username matter here (usernames feed search
// ranking and storage key layout).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `gorm:"size:150;uniqueIndex" json:"username"`
}

// TableName overrides gorm to use the user table.
func (User) TableName() string {
	return "user"
}
