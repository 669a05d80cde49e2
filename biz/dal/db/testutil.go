package db

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Reduce log noise in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Game{},
		&model.Asset{},
		&model.Screenshot{},
		&model.Profile{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestUser creates a user with the given username
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username}
	if err := NewUserDAO().Create(context.Background(), db, user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestGame creates a game owned by the given user
func CreateTestGame(t *testing.T, db *gorm.DB, ownerID uint, title string, published bool) *model.Game {
	t.Helper()
	game := &model.Game{
		Title:       title,
		Description: "Test game",
		OwnerID:     ownerID,
		Published:   published,
		FrameWidth:  640,
		FrameHeight: 480,
	}
	if err := NewGameDAO().Create(context.Background(), db, game); err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
	return game
}

// AttachTestTag gets or creates a tag and attaches it to a game
func AttachTestTag(t *testing.T, db *gorm.DB, game *model.Game, text string) *model.Tag {
	t.Helper()
	tag, err := NewTagDAO().GetOrCreate(context.Background(), db, text)
	if err != nil {
		t.Fatalf("Failed to get or create tag: %v", err)
	}
	if err := db.Model(game).Association("Tags").Append(tag); err != nil {
		t.Fatalf("Failed to attach tag: %v", err)
	}
	return tag
}
