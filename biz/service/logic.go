package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bitsea/gamebay/biz/dal/db"
)

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrScreenshotNotFound = errors.New("screenshot not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidFilename    = errors.New("upload has no usable filename")
	ErrInvalidTitle       = errors.New("game title must not be empty")
	ErrNotOwner           = errors.New("caller does not own this game")
	ErrBlankQuery         = errors.New("blank search query")
)

// Logic contains business rules on top of data persistence.
type Logic struct {
	db            *gorm.DB
	gameDAO       *db.GameDAO
	tagDAO        *db.TagDAO
	userDAO       *db.UserDAO
	assetDAO      *db.AssetDAO
	screenshotDAO *db.ScreenshotDAO
	profileDAO    *db.ProfileDAO
}

func NewLogic(dbConn *gorm.DB) *Logic {
	return &Logic{
		db:            dbConn,
		gameDAO:       db.NewGameDAO(),
		tagDAO:        db.NewTagDAO(),
		userDAO:       db.NewUserDAO(),
		assetDAO:      db.NewAssetDAO(),
		screenshotDAO: db.NewScreenshotDAO(),
		profileDAO:    db.NewProfileDAO(),
	}
}

// notFound translates gorm's record-missing error into a domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
