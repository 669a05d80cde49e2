package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bitsea/gamebay/biz/dal/db"
)

func TestRankGames(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	// A and B carry the tag, C only matches in its title, D is the same
	// as A but unpublished.
	gameA := createGame(t, gdb, alice.ID, "Alpha Quest", true)
	db.AttachTestTag(t, gdb, gameA, "platformer")
	gameB := createGame(t, gdb, bob.ID, "Beta Blast", true)
	db.AttachTestTag(t, gdb, gameB, "platformer")
	gameC := createGame(t, gdb, bob.ID, "Platformer Legends", true)
	gameD := createGame(t, gdb, alice.ID, "Delta Dash", false)
	db.AttachTestTag(t, gdb, gameD, "platformer")

	ranked, err := svc.RankGames(ctx, "platformer")
	if err != nil {
		t.Fatalf("RankGames: %v", err)
	}

	// Tag matches outrank the title match; the tied tag matches order by
	// ascending ID. The unpublished game never appears.
	want := []uint{gameA.ID, gameB.ID, gameC.ID}
	if len(ranked) != len(want) {
		t.Fatalf("ranked = %v, want %v", ranked, want)
	}
	for i := range want {
		if ranked[i] != want[i] {
			t.Fatalf("ranked = %v, want %v", ranked, want)
		}
	}
}

func TestRankGamesAccumulatesAcrossFields(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "retrodev")

	// Matches the query in tag, title and owner name at once.
	triple := createGame(t, gdb, owner.ID, "Retro Rally", true)
	db.AttachTestTag(t, gdb, triple, "retro")

	// Matches only via the owner's username.
	ownerOnly := createGame(t, gdb, owner.ID, "Space Miner", true)

	ranked, err := svc.RankGames(ctx, "retro")
	if err != nil {
		t.Fatalf("RankGames: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("ranked = %v, want 2 results", ranked)
	}
	if ranked[0] != triple.ID || ranked[1] != ownerOnly.ID {
		t.Errorf("ranked = %v, want [%d %d]", ranked, triple.ID, ownerOnly.ID)
	}
}

func TestRankGamesMultipleTokens(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")

	both := createGame(t, gdb, owner.ID, "Dungeon Runner", true)
	db.AttachTestTag(t, gdb, both, "dungeon")
	db.AttachTestTag(t, gdb, both, "runner")

	one := createGame(t, gdb, owner.ID, "Sky Farm", true)
	db.AttachTestTag(t, gdb, one, "runner")

	ranked, err := svc.RankGames(ctx, "dungeon runner")
	if err != nil {
		t.Fatalf("RankGames: %v", err)
	}
	if len(ranked) != 2 || ranked[0] != both.ID || ranked[1] != one.ID {
		t.Errorf("ranked = %v, want [%d %d]", ranked, both.ID, one.ID)
	}
}

func TestRankGamesBlankQuery(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		if _, err := svc.RankGames(context.Background(), query); !errors.Is(err, ErrBlankQuery) {
			t.Errorf("RankGames(%q): got %v, want ErrBlankQuery", query, err)
		}
	}
}

func TestTopTags(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")

	// "puzzle" on two published games, "puzzle-platformer" on one,
	// "puzzler" only on an unpublished game.
	g1 := createGame(t, gdb, owner.ID, "One", true)
	g2 := createGame(t, gdb, owner.ID, "Two", true)
	g3 := createGame(t, gdb, owner.ID, "Three", false)
	db.AttachTestTag(t, gdb, g1, "puzzle")
	db.AttachTestTag(t, gdb, g2, "puzzle")
	db.AttachTestTag(t, gdb, g2, "puzzle-platformer")
	db.AttachTestTag(t, gdb, g3, "puzzler")

	tags, err := svc.TopTags(ctx, "puzz", 0)
	if err != nil {
		t.Fatalf("TopTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != "puzzle" || tags[1] != "puzzle-platformer" {
		t.Errorf("tags = %v, want [puzzle puzzle-platformer]", tags)
	}
}

func TestTopTagsUsesLastToken(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")
	g := createGame(t, gdb, owner.ID, "One", true)
	db.AttachTestTag(t, gdb, g, "platformer")
	db.AttachTestTag(t, gdb, g, "retro")

	// Earlier tokens are settled; only the token being typed matters.
	tags, err := svc.TopTags(ctx, "platformer ret", 0)
	if err != nil {
		t.Fatalf("TopTags: %v", err)
	}
	if len(tags) != 1 || tags[0] != "retro" {
		t.Errorf("tags = %v, want [retro]", tags)
	}
}

func TestTopTagsLimit(t *testing.T) {
	svc, _, gdb := newTestService(t)
	ctx := context.Background()

	owner := createUser(t, gdb, "alice")
	g := createGame(t, gdb, owner.ID, "One", true)
	db.AttachTestTag(t, gdb, g, "tag-a")
	db.AttachTestTag(t, gdb, g, "tag-b")
	db.AttachTestTag(t, gdb, g, "tag-c")

	tags, err := svc.TopTags(ctx, "tag", 2)
	if err != nil {
		t.Fatalf("TopTags: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("len(tags) = %d, want 2", len(tags))
	}

	// An absurd limit clamps rather than erroring.
	if _, err := svc.TopTags(ctx, "tag", 100000); err != nil {
		t.Errorf("TopTags with huge limit: %v", err)
	}

	if _, err := svc.TopTags(ctx, " ", 5); !errors.Is(err, ErrBlankQuery) {
		t.Errorf("blank query: got %v, want ErrBlankQuery", err)
	}
}
