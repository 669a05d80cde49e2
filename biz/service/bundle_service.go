package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/bitsea/gamebay/pkg/archive"
	"github.com/bitsea/gamebay/pkg/mimetype"
)

// DeployedFile is the outcome of deploying one bundle entry.
type DeployedFile struct {
	Path string `json:"path"` // path inside the archive
	Key  string `json:"key"`  // object store key
	URL  string `json:"url,omitempty"`
	Err  string `json:"error,omitempty"`
}

// DeployResult reports a bundle deployment. Per-file uploads are
// independent, so a deployment can end in partial success: some files
// deployed, others not. Callers must check Failed(), not just the error
// return, which is reserved for total failure (nothing uploaded).
type DeployResult struct {
	Files      []DeployedFile `json:"files"`
	ArchiveKey string         `json:"archive_key"`
	ArchiveURL string         `json:"archive_url,omitempty"`
	ArchiveErr string         `json:"archive_error,omitempty"`
}

// Failed returns the number of entries (including the archive backup)
// that did not deploy.
func (r *DeployResult) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != "" {
			n++
		}
	}
	if r.ArchiveErr != "" {
		n++
	}
	return n
}

// Complete reports whether every entry and the archive backup deployed.
func (r *DeployResult) Complete() bool {
	return r.Failed() == 0
}

// DeployBundle deploys a game bundle: every qualifying archive entry goes
// under the game's files/ prefix, then the raw archive is stored as a
// backup. Opening an invalid archive uploads nothing. A zero-entry
// archive still uploads the backup. Re-deploying is safe: keys are
// deterministic, so files overwrite in place.
func (s *Service) DeployBundle(ctx context.Context, ownerID, gameID uint, archiveName string, data []byte) (*DeployResult, error) {
	r := &archive.Reader{}
	if err := r.Open(archiveName, data); err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	defer r.Close()

	result := &DeployResult{
		Files:      make([]DeployedFile, 0, r.Len()),
		ArchiveKey: BundleArchiveKey(ownerID, gameID),
	}

	for {
		entry, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		result.Files = append(result.Files, s.deployEntry(ctx, ownerID, gameID, entry))
	}

	url, err := s.store.PutObject(ctx, result.ArchiveKey, bytes.NewReader(r.Raw()), "application/zip", int64(len(r.Raw())))
	if err != nil {
		hlog.CtxWarnf(ctx, "bundle backup upload failed for game %d: %v", gameID, err)
		result.ArchiveErr = err.Error()
	} else {
		result.ArchiveURL = url
	}

	return result, nil
}

func (s *Service) deployEntry(ctx context.Context, ownerID, gameID uint, entry *archive.Entry) DeployedFile {
	deployed := DeployedFile{
		Path: entry.Name,
		Key:  BundleFileKey(ownerID, gameID, entry.RelPath),
	}

	rc, err := entry.Open()
	if err != nil {
		deployed.Err = err.Error()
		return deployed
	}
	defer rc.Close()

	contentType := mimetype.ResolveFilename(entry.RelPath)
	url, err := s.store.PutObject(ctx, deployed.Key, rc, contentType, entry.Size)
	if err != nil {
		hlog.CtxWarnf(ctx, "bundle file upload failed for game %d, entry %s: %v", gameID, entry.Name, err)
		deployed.Err = err.Error()
		return deployed
	}

	deployed.URL = url
	return deployed
}

// DeleteBundleFiles removes a game's deployed bundle contents, leaving
// the archive backup and screenshots in place.
func (s *Service) DeleteBundleFiles(ctx context.Context, callerID, gameID uint) error {
	game, err := s.logic.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.OwnerID != callerID {
		return ErrNotOwner
	}

	return s.store.DeletePrefix(ctx, BundleFilesPrefix(game.OwnerID, game.ID), false)
}
