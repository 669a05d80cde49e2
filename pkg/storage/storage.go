// Package storage defines the object store abstraction used for game
// bundles, screenshots and avatars. It provides a unified interface over
// S3-compatible services (AWS S3, MinIO) and the local filesystem.
package storage

import (
	"context"
	"io"
)

// Storage defines the interface for object storage operations.
// All backends (local, S3) must implement this interface.
type Storage interface {
	// PutObject uploads an object and returns its public URL.
	// key: object key, e.g. "user/3/games/17/screenshots/a1b2c3-title.png"
	// data: object content reader
	// contentType: MIME type of the object
	// size: content size in bytes, or 0 when unknown
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) (string, error)

	// GetObject retrieves an object.
	// Returns a ReadCloser that must be closed by the caller.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteObject removes an object. Deleting a key that does not exist
	// is not an error.
	DeleteObject(ctx context.Context, key string) error

	// ObjectExists checks if an object exists.
	ObjectExists(ctx context.Context, key string) (bool, error)

	// ListPrefix returns the keys of all objects under the given prefix.
	ListPrefix(ctx context.Context, prefix string) ([]string, error)

	// DeletePrefix removes every object under the given prefix. When
	// includeSelf is true the prefix key itself is deleted as well, for
	// backends that materialise folder placeholder objects.
	DeletePrefix(ctx context.Context, prefix string, includeSelf bool) error

	// URL returns the public URL for an object key without uploading.
	URL(key string) string

	// Type returns the storage type identifier ("local" or "s3").
	Type() string
}
