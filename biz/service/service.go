package service

import (
	"gorm.io/gorm"

	"github.com/bitsea/gamebay/pkg/storage"
)

// AssetUploadInput captures metadata and payload for a single file upload.
type AssetUploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service orchestrates game, asset and search operations using Logic and
// an injected object store. All dependencies arrive explicitly at
// construction; there is no process-global state.
type Service struct {
	logic *Logic
	store storage.Storage
}

func NewService(db *gorm.DB, store storage.Storage) *Service {
	return &Service{
		logic: NewLogic(db),
		store: store,
	}
}

// Store exposes the injected object store, mainly for handlers that
// stream stored objects back to clients.
func (s *Service) Store() storage.Storage {
	return s.store
}
