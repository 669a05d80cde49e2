package service

import (
	"context"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// --------------------- Asset operations ---------------------

func (l *Logic) CreateAsset(ctx context.Context, asset *model.Asset) error {
	return l.assetDAO.Create(ctx, l.db, asset)
}

func (l *Logic) GetAsset(ctx context.Context, id uint) (*model.Asset, error) {
	asset, err := l.assetDAO.GetByID(ctx, l.db, id)
	if err != nil {
		return nil, notFound(err, ErrAssetNotFound)
	}
	return asset, nil
}

func (l *Logic) DeleteAssetRow(ctx context.Context, id uint) error {
	return l.assetDAO.DeleteByID(ctx, l.db, id)
}

// --------------------- Screenshot operations ---------------------

func (l *Logic) GetScreenshot(ctx context.Context, gameID uint) (*model.Screenshot, error) {
	shot, err := l.screenshotDAO.GetByGame(ctx, l.db, gameID)
	if err != nil {
		return nil, notFound(err, ErrScreenshotNotFound)
	}
	return shot, nil
}

func (l *Logic) CreateScreenshot(ctx context.Context, shot *model.Screenshot) error {
	return l.screenshotDAO.Create(ctx, l.db, shot)
}

func (l *Logic) DeleteScreenshotRow(ctx context.Context, id uint) error {
	return l.screenshotDAO.DeleteByID(ctx, l.db, id)
}

// --------------------- Profile operations ---------------------

func (l *Logic) GetProfile(ctx context.Context, userID uint) (*model.Profile, error) {
	profile, err := l.profileDAO.GetByUser(ctx, l.db, userID)
	if err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	return profile, nil
}

func (l *Logic) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	return l.profileDAO.Upsert(ctx, l.db, profile)
}

func (l *Logic) SetProfileAvatar(ctx context.Context, profileID uint, assetID *uint) error {
	return l.profileDAO.SetAvatar(ctx, l.db, profileID, assetID)
}
