package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/bitsea/gamebay/biz/service"
	"github.com/bitsea/gamebay/pkg/config"
)

// GameHandler exposes the game CRUD, bundle and screenshot endpoints.
type GameHandler struct {
	service *service.Service
	upload  config.UploadConfig
}

func NewGameHandler(svc *service.Service, upload config.UploadConfig) *GameHandler {
	return &GameHandler{service: svc, upload: upload}
}

func gameInputFromForm(c *app.RequestContext) service.GameInput {
	in := service.GameInput{
		Title:       strings.TrimSpace(string(c.FormValue("title"))),
		Description: string(c.FormValue("description")),
		RawTags:     string(c.FormValue("tags")),
	}
	switch strings.ToLower(string(c.FormValue("published"))) {
	case "1", "true", "on", "yes":
		in.Published = true
	}
	if w, err := strconv.Atoi(string(c.FormValue("frame_width"))); err == nil {
		in.FrameWidth = w
	}
	if h, err := strconv.Atoi(string(c.FormValue("frame_height"))); err == nil {
		in.FrameHeight = h
	}
	return in
}

// CreateGame creates a game from a multipart form. A bundle archive and
// a screenshot may ride along in the same request; their outcomes are
// reported alongside the created game.
func (h *GameHandler) CreateGame(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}

	game, err := h.service.CreateGame(ctx, ownerID, gameInputFromForm(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	data := map[string]any{"game": game}

	if fileHeader, err := c.FormFile("bundle"); err == nil {
		in, err := readUpload(fileHeader, h.upload.MaxArchiveSize)
		if err != nil {
			writeBadRequest(c, err)
			return
		}
		result, err := h.service.DeployBundle(ctx, ownerID, game.ID, in.Filename, in.Data)
		if err != nil {
			writeBadRequest(c, err)
			return
		}
		data["bundle"] = result
	}

	if fileHeader, err := c.FormFile("screenshot"); err == nil {
		in, err := readUpload(fileHeader, h.upload.MaxSize)
		if err != nil {
			writeBadRequest(c, err)
			return
		}
		if err := validateImageUpload(in, h.upload); err != nil {
			writeBadRequest(c, err)
			return
		}
		shot, err := h.service.SetScreenshot(ctx, game.ID, in)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		data["screenshot"] = shot
	}

	respondData(c, data)
}

// UpdateGame applies creator edits to a game.
func (h *GameHandler) UpdateGame(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	game, err := h.service.UpdateGame(ctx, ownerID, gameID, gameInputFromForm(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"game": game})
}

// DeleteGame destroys a game and everything stored for it.
func (h *GameHandler) DeleteGame(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	if err := h.service.DeleteGame(ctx, ownerID, gameID); err != nil {
		writeServiceError(c, err)
		return
	}
	respondOK(c)
}

// GetGame returns one game and counts the view.
func (h *GameHandler) GetGame(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	game, err := h.service.ViewGame(ctx, callerID(ctx), gameID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"game": game})
}

// ListMyGames returns every game of the authenticated creator,
// unpublished included.
func (h *GameHandler) ListMyGames(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}

	games, err := h.service.ListGamesByOwner(ctx, ownerID)
	if err != nil {
		writeInternalError(c, err)
		return
	}
	respondData(c, map[string]any{"games": games})
}

// UploadBundle deploys a game bundle archive.
func (h *GameHandler) UploadBundle(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	game, err := h.service.GetGame(ctx, gameID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if game.OwnerID != ownerID {
		writeServiceError(c, service.ErrNotOwner)
		return
	}

	fileHeader, err := c.FormFile("bundle")
	if err != nil {
		writeBadRequest(c, errors.New("bundle file is required"))
		return
	}
	in, err := readUpload(fileHeader, h.upload.MaxArchiveSize)
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	result, err := h.service.DeployBundle(ctx, game.OwnerID, game.ID, in.Filename, in.Data)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	respondData(c, map[string]any{"bundle": result})
}

// DeleteBundle removes a game's deployed bundle files.
func (h *GameHandler) DeleteBundle(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	if err := h.service.DeleteBundleFiles(ctx, ownerID, gameID); err != nil {
		writeServiceError(c, err)
		return
	}
	respondOK(c)
}

// SetScreenshot creates or replaces the game's screenshot.
func (h *GameHandler) SetScreenshot(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	game, err := h.service.GetGame(ctx, gameID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if game.OwnerID != ownerID {
		writeServiceError(c, service.ErrNotOwner)
		return
	}

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		writeBadRequest(c, errors.New("screenshot file is required"))
		return
	}
	in, err := readUpload(fileHeader, h.upload.MaxSize)
	if err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := validateImageUpload(in, h.upload); err != nil {
		writeBadRequest(c, err)
		return
	}

	shot, err := h.service.SetScreenshot(ctx, gameID, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"screenshot": shot})
}

// DeleteScreenshot clears the game's screenshot slot.
func (h *GameHandler) DeleteScreenshot(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	ownerID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}
	gameID, err := paramUint(c, "gameID")
	if err != nil {
		writeBadRequest(c, err)
		return
	}

	game, err := h.service.GetGame(ctx, gameID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if game.OwnerID != ownerID {
		writeServiceError(c, service.ErrNotOwner)
		return
	}

	if err := h.service.DeleteScreenshot(ctx, gameID); err != nil {
		writeServiceError(c, err)
		return
	}
	respondOK(c)
}
