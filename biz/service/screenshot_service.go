package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/bitsea/gamebay/biz/dal/model"
	"github.com/bitsea/gamebay/pkg/naming"
)

// SetScreenshot creates or replaces a game's single screenshot. The new
// asset is uploaded and recorded before anything touches the old one, so
// a failed upload never leaves the game screenshot-less: on any error the
// previous screenshot (if present) is untouched.
//
// A crash between the new upload and the old asset's removal can orphan
// the old object. That window is a tolerated transient leak; a
// reconciliation sweep, not this method, cleans it up.
func (s *Service) SetScreenshot(ctx context.Context, gameID uint, in AssetUploadInput) (*model.Screenshot, error) {
	game, err := s.logic.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	name := naming.DeriveDefaultFilename(in.Filename)
	if name == "" {
		return nil, ErrInvalidFilename
	}

	previous, err := s.logic.GetScreenshot(ctx, gameID)
	if err != nil && !errors.Is(err, ErrScreenshotNotFound) {
		return nil, err
	}

	key := ScreenshotKey(game.OwnerID, game.ID, name)
	asset, err := s.CreateAsset(ctx, key, in)
	if err != nil {
		return nil, err
	}

	shot := &model.Screenshot{GameID: game.ID, AssetID: asset.ID}
	if err := s.logic.CreateScreenshot(ctx, shot); err != nil {
		// Rollback the new asset; the old slot is still in place.
		if delErr := s.DeleteAsset(ctx, asset.ID); delErr != nil {
			hlog.CtxWarnf(ctx, "rollback of screenshot asset %d failed: %v", asset.ID, delErr)
		}
		return nil, fmt.Errorf("record screenshot: %w", err)
	}

	if previous != nil {
		if err := s.logic.DeleteScreenshotRow(ctx, previous.ID); err != nil {
			hlog.CtxWarnf(ctx, "delete of replaced screenshot row %d failed: %v", previous.ID, err)
		}
		if err := s.DeleteAsset(ctx, previous.AssetID); err != nil {
			// The swap already happened; the old object lingers until a
			// reconciliation sweep.
			hlog.CtxWarnf(ctx, "delete of replaced screenshot asset %d failed: %v", previous.AssetID, err)
		}
	}

	shot.Asset = asset
	return shot, nil
}

// DeleteScreenshot clears a game's screenshot slot: the row goes first,
// then the asset (stored object plus record). Deleting an already-empty
// slot is a no-op.
func (s *Service) DeleteScreenshot(ctx context.Context, gameID uint) error {
	shot, err := s.logic.GetScreenshot(ctx, gameID)
	if errors.Is(err, ErrScreenshotNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.logic.DeleteScreenshotRow(ctx, shot.ID); err != nil {
		return err
	}

	return s.DeleteAsset(ctx, shot.AssetID)
}
