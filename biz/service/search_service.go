package service

import (
	"context"
	"sort"
	"strings"

	"github.com/bitsea/gamebay/pkg/naming"
	"github.com/bitsea/gamebay/pkg/util"
)

// Search ranking weights. Tags say the most about what a game is, titles
// a little less, the creator's name least.
const (
	tagWeight   = 1.0
	titleWeight = 0.5
	ownerWeight = 0.15
)

// DefaultTopTags is the number of tags TopTags returns when no limit is
// given; MaxTopTags caps explicit limits.
const (
	DefaultTopTags = 8
	MaxTopTags     = 500
)

// RankGames scores published games against a free-text query and returns
// their IDs best-first. Per token, a game collects the tag weight for
// every one of its tags whose text contains the token, the title weight
// when its title contains the token, and the owner weight when its
// owner's username contains the token; weights add up across tokens and
// match classes. Unpublished games never appear.
//
// A blank query returns ErrBlankQuery rather than matching everything.
// An empty substring test is true against every record, so callers must
// route blank queries to an unranked listing instead.
//
// Ties break on ascending game ID so results are reproducible.
func (s *Service) RankGames(ctx context.Context, query string) ([]uint, error) {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil, ErrBlankQuery
	}

	scores := make(map[uint]float64)

	for _, token := range tokens {
		tags, err := s.logic.tagDAO.TextContains(ctx, s.logic.db, token)
		if err != nil {
			return nil, err
		}
		for _, tag := range tags {
			ids, err := s.logic.tagDAO.GameIDsForTag(ctx, s.logic.db, tag.ID, true)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				scores[id] += tagWeight
			}
		}

		ids, err := s.logic.gameDAO.PublishedIDsByTitleToken(ctx, s.logic.db, token)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			scores[id] += titleWeight
		}

		owners, err := s.logic.userDAO.UsernameContains(ctx, s.logic.db, token)
		if err != nil {
			return nil, err
		}
		for _, owner := range owners {
			ownedIDs, err := s.logic.gameDAO.PublishedIDsByOwner(ctx, s.logic.db, owner.ID)
			if err != nil {
				return nil, err
			}
			for _, id := range ownedIDs {
				scores[id] += ownerWeight
			}
		}
	}

	ranked := make([]uint, 0, len(scores))
	for id := range scores {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	return ranked, nil
}

// TopTags suggests tags for a query: only the last token counts (it is
// the one still being typed), matching tags are ordered by how many
// published games carry them, and tags on no published game are dropped.
// Only published games count, matching what RankGames can surface. limit
// defaults to DefaultTopTags when zero or negative and is clamped to
// [1, MaxTopTags].
func (s *Service) TopTags(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultTopTags
	}
	limit = util.Clamp(limit, 1, MaxTopTags)

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil, ErrBlankQuery
	}
	token := tokens[len(tokens)-1]

	counts, err := s.logic.tagDAO.CountGamesByToken(ctx, s.logic.db, token, true, limit)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(counts))
	for _, c := range counts {
		texts = append(texts, c.Text)
	}
	return texts, nil
}

// tokenize splits a query on whitespace and normalizes each token the
// same way tags are normalized, so queries and tag texts meet in the
// same space.
func tokenize(query string) []string {
	fields := strings.Fields(query)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if token := naming.Slugify(field); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
