package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/bitsea/gamebay/biz/dal/model"
	"github.com/bitsea/gamebay/biz/service"
)

// SearchHandler exposes ranked game search and tag suggestions.
type SearchHandler struct {
	service *service.Service
}

func NewSearchHandler(svc *service.Service) *SearchHandler {
	return &SearchHandler{service: svc}
}

// SearchGames ranks published games against the q parameter. A blank
// query falls back to the unranked published listing instead of matching
// everything.
func (h *SearchHandler) SearchGames(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	query := c.Query("q")

	ids, err := h.service.RankGames(ctx, query)
	if errors.Is(err, service.ErrBlankQuery) {
		games, err := h.service.ListPublishedGames(ctx)
		if err != nil {
			writeInternalError(c, err)
			return
		}
		respondData(c, map[string]any{"games": games})
		return
	}
	if err != nil {
		writeInternalError(c, err)
		return
	}

	games := make([]*model.Game, 0, len(ids))
	for _, id := range ids {
		game, err := h.service.GetGame(ctx, id)
		if err != nil {
			writeInternalError(c, err)
			return
		}
		games = append(games, game)
	}
	respondData(c, map[string]any{"games": games})
}

// SuggestTags returns tags matching the query's trailing token, ranked
// by how many published games carry them.
func (h *SearchHandler) SuggestTags(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(c, errors.New("limit must be an integer"))
			return
		}
		limit = n
	}

	tags, err := h.service.TopTags(ctx, c.Query("q"), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"tags": tags})
}
