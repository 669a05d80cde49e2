package db

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/model"
)

func TestAssetDAO_Lifecycle(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewAssetDAO()
	ctx := context.Background()

	asset := &model.Asset{
		Filename:    "shot.png",
		Key:         "user/1/games/2/screenshots/abc123shot.png",
		URL:         "https://cdn.example.com/bucket/user/1/games/2/screenshots/abc123shot.png",
		ContentType: "image/png",
	}

	t.Run("Create", func(t *testing.T) {
		if err := dao.Create(ctx, db, asset); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if asset.ID == 0 {
			t.Error("Expected ID to be set after creation")
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		err := dao.Create(ctx, db, &model.Asset{Filename: "nokey.png"})
		if err == nil {
			t.Error("Expected error for empty key")
		}
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		dup := &model.Asset{Filename: "other.png", Key: asset.Key}
		if err := dao.Create(ctx, db, dup); err == nil {
			t.Error("Expected error for duplicate key")
		}
	})

	t.Run("GetByKey", func(t *testing.T) {
		found, err := dao.GetByKey(ctx, db, asset.Key)
		if err != nil {
			t.Fatalf("GetByKey failed: %v", err)
		}
		if found.ID != asset.ID {
			t.Errorf("Expected asset %d, got %d", asset.ID, found.ID)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := dao.DeleteByID(ctx, db, asset.ID); err != nil {
			t.Fatalf("DeleteByID failed: %v", err)
		}
		if _, err := dao.GetByID(ctx, db, asset.ID); err != gorm.ErrRecordNotFound {
			t.Errorf("Expected ErrRecordNotFound after delete, got: %v", err)
		}
	})

	t.Run("DeleteNonExistent", func(t *testing.T) {
		if err := dao.DeleteByID(ctx, db, 9999); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestScreenshotDAO_SingleSlot(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	assetDAO := NewAssetDAO()
	shotDAO := NewScreenshotDAO()
	ctx := context.Background()

	owner := CreateTestUser(t, db, "aaron")
	game := CreateTestGame(t, db, owner.ID, "Shooter", true)

	asset := &model.Asset{Filename: "s.png", Key: "k1", ContentType: "image/png"}
	if err := assetDAO.Create(ctx, db, asset); err != nil {
		t.Fatalf("asset create: %v", err)
	}

	t.Run("EmptySlot", func(t *testing.T) {
		if _, err := shotDAO.GetByGame(ctx, db, game.ID); err != gorm.ErrRecordNotFound {
			t.Errorf("Expected ErrRecordNotFound for empty slot, got: %v", err)
		}
	})

	t.Run("CreateAndFetch", func(t *testing.T) {
		shot := &model.Screenshot{GameID: game.ID, AssetID: asset.ID}
		if err := shotDAO.Create(ctx, db, shot); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := shotDAO.GetByGame(ctx, db, game.ID)
		if err != nil {
			t.Fatalf("GetByGame failed: %v", err)
		}
		if found.Asset == nil || found.Asset.Key != "k1" {
			t.Error("Expected asset preloaded")
		}
	})
}
