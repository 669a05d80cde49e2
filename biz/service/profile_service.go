package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/bitsea/gamebay/biz/dal/model"
	"github.com/bitsea/gamebay/pkg/mimetype"
)

// GetProfile returns a user's profile by username.
func (s *Service) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	user, err := s.logic.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.logic.GetProfile(ctx, user.ID)
}

// UpdateBio writes the profile's bio text, creating the profile row on
// first use.
func (s *Service) UpdateBio(ctx context.Context, userID uint, bio string) (*model.Profile, error) {
	if _, err := s.logic.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := s.logic.GetProfile(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		profile = &model.Profile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	profile.Bio = bio
	if err := s.logic.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetAvatar creates or replaces a user's avatar, the same single-slot
// pattern games use for screenshots. The avatar key is fixed apart from
// the upload's extension, so same-extension replacements overwrite in
// place while the asset record still turns over.
func (s *Service) SetAvatar(ctx context.Context, userID uint, in AssetUploadInput) (*model.Profile, error) {
	if _, err := s.logic.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if in.Filename == "" {
		return nil, ErrInvalidFilename
	}

	profile, err := s.logic.GetProfile(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		profile = &model.Profile{UserID: userID}
		if err := s.logic.UpsertProfile(ctx, profile); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	previousAssetID := profile.AvatarAssetID

	key := AvatarKey(userID, path.Ext(in.Filename))
	asset, err := s.createAvatarAsset(ctx, key, in, previousAssetID)
	if err != nil {
		return nil, err
	}

	if err := s.logic.SetProfileAvatar(ctx, profile.ID, &asset.ID); err != nil {
		if delErr := s.DeleteAsset(ctx, asset.ID); delErr != nil {
			hlog.CtxWarnf(ctx, "rollback of avatar asset %d failed: %v", asset.ID, delErr)
		}
		return nil, fmt.Errorf("set avatar: %w", err)
	}

	if previousAssetID != nil && *previousAssetID != asset.ID {
		if err := s.deleteReplacedAvatar(ctx, *previousAssetID); err != nil {
			hlog.CtxWarnf(ctx, "delete of replaced avatar asset %d failed: %v", *previousAssetID, err)
		}
	}

	profile.AvatarAssetID = &asset.ID
	profile.Avatar = asset
	return profile, nil
}

// createAvatarAsset uploads and records the new avatar. When the new key
// matches the old asset's key (same extension), the put is an atomic
// overwrite: a failed upload leaves the old object and record fully
// intact, and only after the upload lands is the old record retired so
// the new one can claim the unique key.
func (s *Service) createAvatarAsset(ctx context.Context, key string, in AssetUploadInput, previousAssetID *uint) (*model.Asset, error) {
	var old *model.Asset
	if previousAssetID != nil {
		prev, err := s.logic.GetAsset(ctx, *previousAssetID)
		if err == nil && prev.Key == key {
			old = prev
		}
	}

	if old == nil {
		return s.CreateAsset(ctx, key, in)
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = mimetype.ResolveFilename(in.Filename)
	}

	url, err := s.store.PutObject(ctx, key, bytes.NewReader(in.Data), contentType, int64(len(in.Data)))
	if err != nil {
		return nil, fmt.Errorf("upload asset: %w", err)
	}

	if err := s.logic.DeleteAssetRow(ctx, old.ID); err != nil {
		return nil, err
	}

	asset := &model.Asset{
		Filename:    in.Filename,
		Key:         key,
		URL:         url,
		ContentType: contentType,
	}
	if err := s.logic.CreateAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("record asset: %w", err)
	}
	return asset, nil
}

// deleteReplacedAvatar removes the old avatar. When the old asset shared
// the new key its row is already gone and its object was overwritten, so
// DeleteAsset's missing-row no-op covers it; only a differing extension
// leaves an object to delete.
func (s *Service) deleteReplacedAvatar(ctx context.Context, oldAssetID uint) error {
	return s.DeleteAsset(ctx, oldAssetID)
}

// DeleteAvatar clears the avatar slot; an already-empty slot is a no-op.
func (s *Service) DeleteAvatar(ctx context.Context, userID uint) error {
	profile, err := s.logic.GetProfile(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if profile.AvatarAssetID == nil {
		return nil
	}

	assetID := *profile.AvatarAssetID
	if err := s.logic.SetProfileAvatar(ctx, profile.ID, nil); err != nil {
		return err
	}
	return s.DeleteAsset(ctx, assetID)
}
