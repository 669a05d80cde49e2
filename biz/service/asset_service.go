package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/bitsea/gamebay/biz/dal/model"
	"github.com/bitsea/gamebay/pkg/mimetype"
)

// CreateAsset uploads the payload under the given store key and records
// it. The object goes up first; if recording fails the object is deleted
// again so a row never points at a missing blob.
func (s *Service) CreateAsset(ctx context.Context, key string, in AssetUploadInput) (*model.Asset, error) {
	if in.Filename == "" {
		return nil, ErrInvalidFilename
	}
	if key == "" {
		return nil, errors.New("storage key is required")
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = mimetype.ResolveFilename(in.Filename)
	}

	url, err := s.store.PutObject(ctx, key, bytes.NewReader(in.Data), contentType, int64(len(in.Data)))
	if err != nil {
		return nil, fmt.Errorf("upload asset: %w", err)
	}

	asset := &model.Asset{
		Filename:    in.Filename,
		Key:         key,
		URL:         url,
		ContentType: contentType,
	}

	if err := s.logic.CreateAsset(ctx, asset); err != nil {
		// Rollback: delete the uploaded object
		_ = s.store.DeleteObject(ctx, key)
		return nil, fmt.Errorf("record asset: %w", err)
	}

	return asset, nil
}

// DeleteAsset removes an asset's stored object and then its record.
// Deleting an asset that no longer exists is a no-op. If the object store
// refuses the delete, the record is kept and the error returned: a stray
// row pointing at a live object is recoverable, a silently orphaned blob
// is not.
func (s *Service) DeleteAsset(ctx context.Context, id uint) error {
	asset, err := s.logic.GetAsset(ctx, id)
	if errors.Is(err, ErrAssetNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.store.DeleteObject(ctx, asset.Key); err != nil {
		return fmt.Errorf("delete stored object %s: %w", asset.Key, err)
	}

	return s.logic.DeleteAssetRow(ctx, asset.ID)
}
