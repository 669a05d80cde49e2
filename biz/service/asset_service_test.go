package service

import (
	"context"
	"testing"

	"github.com/bitsea/gamebay/biz/dal/model"
)

func TestCreateAsset(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	asset, err := svc.CreateAsset(ctx, "user/1/test/file.png", AssetUploadInput{
		Filename: "file.png",
		Data:     []byte("png bytes"),
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if asset.ContentType != "image/png" {
		t.Errorf("content type = %q, want image/png resolved from the name", asset.ContentType)
	}
	if asset.URL != store.URL(asset.Key) {
		t.Errorf("url = %q, want %q", asset.URL, store.URL(asset.Key))
	}
	if !store.has(asset.Key) {
		t.Error("expected stored object")
	}

	// An explicit content type wins over the filename.
	forced, err := svc.CreateAsset(ctx, "user/1/test/data.bin", AssetUploadInput{
		Filename:    "data.bin",
		ContentType: "application/x-custom",
		Data:        []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if forced.ContentType != "application/x-custom" {
		t.Errorf("content type = %q, want the explicit one", forced.ContentType)
	}
}

func TestCreateAssetRollsBackOnRecordFailure(t *testing.T) {
	svc, store, gdb := newTestService(t)
	ctx := context.Background()

	key := "user/1/test/file.png"
	if _, err := svc.CreateAsset(ctx, key, AssetUploadInput{Filename: "file.png", Data: []byte("v1")}); err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	// The key is unique; a second record under it fails after the upload,
	// and the rollback removes the freshly written object.
	if _, err := svc.CreateAsset(ctx, key, AssetUploadInput{Filename: "file.png", Data: []byte("v2")}); err == nil {
		t.Fatal("expected duplicate key to fail")
	}
	if store.has(key) {
		t.Error("rollback should have deleted the uploaded object")
	}

	var count int64
	if err := gdb.Model(&model.Asset{}).Count(&count).Error; err != nil {
		t.Fatalf("count assets: %v", err)
	}
	if count != 1 {
		t.Errorf("expected the original row untouched, got %d rows", count)
	}
}

func TestDeleteAsset(t *testing.T) {
	svc, store, gdb := newTestService(t)
	ctx := context.Background()

	asset, err := svc.CreateAsset(ctx, "user/1/test/file.png", AssetUploadInput{Filename: "file.png", Data: []byte("png")})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	// A refused store delete keeps the record so nothing is orphaned.
	store.failDeletes[asset.Key] = true
	if err := svc.DeleteAsset(ctx, asset.ID); err == nil {
		t.Fatal("expected error when the store refuses the delete")
	}
	var count int64
	if err := gdb.Model(&model.Asset{}).Count(&count).Error; err != nil {
		t.Fatalf("count assets: %v", err)
	}
	if count != 1 {
		t.Errorf("record should survive a failed object delete, got %d rows", count)
	}

	delete(store.failDeletes, asset.Key)
	if err := svc.DeleteAsset(ctx, asset.ID); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
	if store.has(asset.Key) {
		t.Error("object should be gone")
	}

	// Deleting again, or deleting an unknown id, is a no-op.
	if err := svc.DeleteAsset(ctx, asset.ID); err != nil {
		t.Errorf("repeat DeleteAsset: %v", err)
	}
	if err := svc.DeleteAsset(ctx, 9999); err != nil {
		t.Errorf("DeleteAsset on unknown id: %v", err)
	}
}
