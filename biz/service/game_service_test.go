package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bitsea/gamebay/biz/dal/model"
)

func TestCreateGame(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")

	game, err := svc.CreateGame(ctx, owner.ID, GameInput{
		Title:   "Cave Crawler",
		RawTags: "Platformer  RETRO platformer",
	})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if game.FrameWidth != 640 || game.FrameHeight != 480 {
		t.Errorf("frame = %dx%d, want 640x480 defaults", game.FrameWidth, game.FrameHeight)
	}

	loaded, err := svc.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if len(loaded.Tags) != 2 {
		t.Fatalf("expected tags normalized and deduplicated, got %d", len(loaded.Tags))
	}
	got := map[string]bool{}
	for _, tag := range loaded.Tags {
		got[tag.Text] = true
	}
	if !got["platformer"] || !got["retro"] {
		t.Errorf("tags = %v, want platformer and retro", got)
	}
}

func TestCreateGameValidation(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")

	if _, err := svc.CreateGame(ctx, owner.ID, GameInput{Title: "   "}); !errors.Is(err, ErrInvalidTitle) {
		t.Errorf("blank title: got %v, want ErrInvalidTitle", err)
	}
	if _, err := svc.CreateGame(ctx, 9999, GameInput{Title: "Orphan"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing owner: got %v, want ErrUserNotFound", err)
	}
}

func TestUpdateGame(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")
	stranger := createUser(t, gdb, "mallory")

	game, err := svc.CreateGame(ctx, owner.ID, GameInput{
		Title:     "Cave Crawler",
		Published: true,
		RawTags:   "platformer",
	})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := svc.UpdateGame(ctx, stranger.ID, game.ID, GameInput{Title: "Stolen"}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("stranger edit: got %v, want ErrNotOwner", err)
	}

	updated, err := svc.UpdateGame(ctx, owner.ID, game.ID, GameInput{
		Title:       "Cave Crawler DX",
		Published:   false,
		FrameWidth:  800,
		FrameHeight: 600,
		RawTags:     "roguelike",
	})
	if err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}
	if updated.Title != "Cave Crawler DX" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Published {
		t.Error("unpublishing must persist")
	}
	if updated.FrameWidth != 800 || updated.FrameHeight != 600 {
		t.Errorf("frame = %dx%d, want 800x600", updated.FrameWidth, updated.FrameHeight)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Text != "roguelike" {
		t.Errorf("tags = %v, want just roguelike", updated.Tags)
	}
}

func TestViewGame(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")
	viewer := createUser(t, gdb, "bob")
	game := createGame(t, gdb, owner.ID, "Cave Crawler", true)

	// Owner views do not count.
	seen, err := svc.ViewGame(ctx, owner.ID, game.ID)
	if err != nil {
		t.Fatalf("owner ViewGame: %v", err)
	}
	if seen.TimesViewed != 0 {
		t.Errorf("owner view counted: %d", seen.TimesViewed)
	}

	seen, err = svc.ViewGame(ctx, viewer.ID, game.ID)
	if err != nil {
		t.Fatalf("viewer ViewGame: %v", err)
	}
	if seen.TimesViewed != 1 {
		t.Errorf("TimesViewed = %d, want 1", seen.TimesViewed)
	}

	reloaded, err := svc.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if reloaded.TimesViewed != 1 {
		t.Errorf("persisted TimesViewed = %d, want 1", reloaded.TimesViewed)
	}
}

func TestViewGameUnpublishedHidden(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")
	viewer := createUser(t, gdb, "bob")
	game := createGame(t, gdb, owner.ID, "Secret Project", false)

	if _, err := svc.ViewGame(ctx, viewer.ID, game.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("stranger on unpublished: got %v, want ErrGameNotFound", err)
	}
	if _, err := svc.ViewGame(ctx, owner.ID, game.ID); err != nil {
		t.Errorf("owner on unpublished: %v", err)
	}
}

func TestDeleteGame(t *testing.T) {
	svc, store, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")
	stranger := createUser(t, gdb, "mallory")
	game := createGame(t, gdb, owner.ID, "Cave Crawler", true)

	data := buildZip(t, map[string]string{"cave/index.html": "<html></html>"})
	if _, err := svc.DeployBundle(ctx, owner.ID, game.ID, "cave.zip", data); err != nil {
		t.Fatalf("DeployBundle: %v", err)
	}
	if _, err := svc.SetScreenshot(ctx, game.ID, AssetUploadInput{Filename: "shot.png", Data: []byte("png")}); err != nil {
		t.Fatalf("SetScreenshot: %v", err)
	}

	if err := svc.DeleteGame(ctx, stranger.ID, game.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("stranger delete: got %v, want ErrNotOwner", err)
	}

	if err := svc.DeleteGame(ctx, owner.ID, game.ID); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	if store.count() != 0 {
		t.Errorf("expected every stored object gone, %d remain", store.count())
	}
	if _, err := svc.GetGame(ctx, game.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("game should be gone, got %v", err)
	}

	var assets int64
	if err := gdb.Model(&model.Asset{}).Count(&assets).Error; err != nil {
		t.Fatalf("count assets: %v", err)
	}
	if assets != 0 {
		t.Errorf("expected asset rows cleaned up, %d remain", assets)
	}
	var shots int64
	if err := gdb.Model(&model.Screenshot{}).Count(&shots).Error; err != nil {
		t.Fatalf("count screenshots: %v", err)
	}
	if shots != 0 {
		t.Errorf("expected screenshot rows cleaned up, %d remain", shots)
	}
}
