package service

import (
	"context"

	"github.com/bitsea/gamebay/biz/dal/model"
)

// --------------------- Game operations ---------------------

func (l *Logic) CreateGame(ctx context.Context, game *model.Game) error {
	return l.gameDAO.Create(ctx, l.db, game)
}

func (l *Logic) GetGame(ctx context.Context, id uint) (*model.Game, error) {
	game, err := l.gameDAO.GetByID(ctx, l.db, id)
	if err != nil {
		return nil, notFound(err, ErrGameNotFound)
	}
	return game, nil
}

func (l *Logic) UpdateGame(ctx context.Context, game *model.Game) error {
	if err := l.gameDAO.Update(ctx, l.db, game); err != nil {
		return notFound(err, ErrGameNotFound)
	}
	return nil
}

func (l *Logic) DeleteGame(ctx context.Context, id uint) error {
	return l.gameDAO.Delete(ctx, l.db, id)
}

func (l *Logic) IncrementGameViews(ctx context.Context, id uint) error {
	return l.gameDAO.IncrementViews(ctx, l.db, id)
}

func (l *Logic) ReplaceGameTags(ctx context.Context, game *model.Game, tags []*model.Tag) error {
	return l.gameDAO.ReplaceTags(ctx, l.db, game, tags)
}

func (l *Logic) ListPublishedGames(ctx context.Context) ([]model.Game, error) {
	return l.gameDAO.ListPublished(ctx, l.db)
}

func (l *Logic) ListGamesByOwner(ctx context.Context, ownerID uint) ([]model.Game, error) {
	return l.gameDAO.ListByOwner(ctx, l.db, ownerID)
}

// --------------------- Tag operations ---------------------

// GetOrCreateTags resolves normalized tag texts to rows, creating any that
// do not exist yet.
func (l *Logic) GetOrCreateTags(ctx context.Context, texts []string) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0, len(texts))
	for _, text := range texts {
		tag, err := l.tagDAO.GetOrCreate(ctx, l.db, text)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// --------------------- User operations ---------------------

func (l *Logic) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := l.userDAO.GetByID(ctx, l.db, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (l *Logic) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := l.userDAO.GetByUsername(ctx, l.db, username)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}
