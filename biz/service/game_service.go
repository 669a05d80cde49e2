package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/bitsea/gamebay/biz/dal/model"
	"github.com/bitsea/gamebay/pkg/naming"
)

// GameInput carries the creator-editable fields of a game. RawTags is
// free-form tag text; it goes through naming.ParseTags, the single
// normalization path for tag creation.
type GameInput struct {
	Title       string
	Description string
	Published   bool
	FrameWidth  int
	FrameHeight int
	RawTags     string
}

// CreateGame creates a game for the owner, resolving its tags.
func (s *Service) CreateGame(ctx context.Context, ownerID uint, in GameInput) (*model.Game, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if _, err := s.logic.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	tags, err := s.logic.GetOrCreateTags(ctx, naming.ParseTags(in.RawTags))
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}

	game := &model.Game{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     ownerID,
		Published:   in.Published,
		FrameWidth:  frameOrDefault(in.FrameWidth, 640),
		FrameHeight: frameOrDefault(in.FrameHeight, 480),
		Tags:        tags,
	}

	if err := s.logic.CreateGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// UpdateGame applies creator edits. Only the owner may edit.
func (s *Service) UpdateGame(ctx context.Context, callerID, gameID uint, in GameInput) (*model.Game, error) {
	game, err := s.logic.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.OwnerID != callerID {
		return nil, ErrNotOwner
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidTitle
	}

	game.Title = in.Title
	game.Description = in.Description
	game.Published = in.Published
	game.FrameWidth = frameOrDefault(in.FrameWidth, 640)
	game.FrameHeight = frameOrDefault(in.FrameHeight, 480)

	if err := s.logic.UpdateGame(ctx, game); err != nil {
		return nil, err
	}

	tags, err := s.logic.GetOrCreateTags(ctx, naming.ParseTags(in.RawTags))
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	if err := s.logic.ReplaceGameTags(ctx, game, tags); err != nil {
		return nil, err
	}

	return s.logic.GetGame(ctx, gameID)
}

// DeleteGame destroys a game: every stored object under the game's
// prefix (bundle files, archive backup, screenshots), the screenshot and
// asset rows, then the game row itself. Only the owner may delete.
func (s *Service) DeleteGame(ctx context.Context, callerID, gameID uint) error {
	game, err := s.logic.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.OwnerID != callerID {
		return ErrNotOwner
	}

	if err := s.store.DeletePrefix(ctx, GamePrefix(game.OwnerID, game.ID), true); err != nil {
		return fmt.Errorf("delete game storage: %w", err)
	}

	shot, err := s.logic.GetScreenshot(ctx, gameID)
	if err == nil {
		if err := s.logic.DeleteScreenshotRow(ctx, shot.ID); err != nil {
			hlog.CtxWarnf(ctx, "delete screenshot row %d failed: %v", shot.ID, err)
		}
		// The prefix deletion already removed the stored object.
		if err := s.logic.DeleteAssetRow(ctx, shot.AssetID); err != nil {
			hlog.CtxWarnf(ctx, "delete screenshot asset row %d failed: %v", shot.AssetID, err)
		}
	} else if !errors.Is(err, ErrScreenshotNotFound) {
		return err
	}

	return s.logic.DeleteGame(ctx, gameID)
}

// ViewGame returns a game for display and counts the view. Unpublished
// games are only visible to their owner. Views by the owner do not
// count. The counter update is a single atomic SQL increment; concurrent
// viewers never lose updates.
func (s *Service) ViewGame(ctx context.Context, viewerID, gameID uint) (*model.Game, error) {
	game, err := s.logic.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.Published && game.OwnerID != viewerID {
		return nil, ErrGameNotFound
	}

	if viewerID != game.OwnerID {
		if err := s.logic.IncrementGameViews(ctx, gameID); err != nil {
			return nil, err
		}
		game.TimesViewed++
	}

	return game, nil
}

// GetGame returns a game without counting a view.
func (s *Service) GetGame(ctx context.Context, gameID uint) (*model.Game, error) {
	return s.logic.GetGame(ctx, gameID)
}

// ListPublishedGames returns published games, most viewed first.
func (s *Service) ListPublishedGames(ctx context.Context) ([]model.Game, error) {
	return s.logic.ListPublishedGames(ctx)
}

// ListGamesByOwner returns all of a creator's games, newest first.
func (s *Service) ListGamesByOwner(ctx context.Context, ownerID uint) ([]model.Game, error) {
	return s.logic.ListGamesByOwner(ctx, ownerID)
}

func frameOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
