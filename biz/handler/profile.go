package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/bitsea/gamebay/biz/service"
	"github.com/bitsea/gamebay/pkg/config"
)

// ProfileHandler exposes public profiles and the authenticated user's
// bio and avatar.
type ProfileHandler struct {
	service *service.Service
	upload  config.UploadConfig
}

func NewProfileHandler(svc *service.Service, upload config.UploadConfig) *ProfileHandler {
	return &ProfileHandler{service: svc, upload: upload}
}

// GetProfile returns a user's public profile by username.
func (h *ProfileHandler) GetProfile(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	username := c.Param("username")
	if username == "" {
		writeBadRequest(c, errors.New("username is required"))
		return
	}

	profile, err := h.service.GetProfile(ctx, username)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"profile": profile})
}

// UpdateBio writes the authenticated user's bio.
func (h *ProfileHandler) UpdateBio(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	userID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}

	profile, err := h.service.UpdateBio(ctx, userID, string(c.FormValue("bio")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"profile": profile})
}

// SetAvatar creates or replaces the authenticated user's avatar.
func (h *ProfileHandler) SetAvatar(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	userID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		writeBadRequest(c, errors.New("avatar file is required"))
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

	profile, err := h.service.SetAvatar(ctx, userID, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	respondData(c, map[string]any{"profile": profile})
}

// DeleteAvatar clears the authenticated user's avatar slot.
func (h *ProfileHandler) DeleteAvatar(ctx context.Context, c *app.RequestContext) {
	ctx = enrichContext(ctx, c)
	userID, ok := requireCaller(ctx, c)
	if !ok {
		return
	}

	if err := h.service.DeleteAvatar(ctx, userID); err != nil {
		writeServiceError(c, err)
		return
	}
	respondOK(c)
}
