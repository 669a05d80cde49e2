package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/bitsea/gamebay/biz/service"
	pkgcommon "github.com/bitsea/gamebay/pkg/common"
	"github.com/bitsea/gamebay/pkg/config"
)

// enrichContext propagates the authenticated user from request headers
// onto the context so the service layer can run ownership checks.
func enrichContext(ctx context.Context, c *app.RequestContext) context.Context {
	if userHeader := c.GetHeader("X-User-Id"); len(userHeader) > 0 {
		if id, err := strconv.ParseUint(string(userHeader), 10, 64); err == nil {
			ctx = pkgcommon.ContextWithOwnerID(ctx, uint(id))
		}
	}
	return ctx
}

// callerID returns the authenticated user's ID, or 0 when the request is
// anonymous.
func callerID(ctx context.Context) uint {
	id, _ := pkgcommon.OwnerIDFromContext(ctx)
	return id
}

// requireCaller returns the authenticated user's ID or writes a 401.
func requireCaller(ctx context.Context, c *app.RequestContext) (uint, bool) {
	id, ok := pkgcommon.OwnerIDFromContext(ctx)
	if !ok {
		c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
			Code:  consts.StatusUnauthorized,
			Msg:   "authentication required",
			Error: "authentication required",
		})
		return 0, false
	}
	return id, true
}

func paramUint(c *app.RequestContext, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

// readUpload pulls one multipart file into memory, enforcing the size
// cap before reading.
func readUpload(fileHeader *multipart.FileHeader, maxSize int64) (service.AssetUploadInput, error) {
	var in service.AssetUploadInput
	if fileHeader.Size > maxSize {
		return in, fmt.Errorf("file %q exceeds the %d byte limit", fileHeader.Filename, maxSize)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return in, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return in, err
	}

	in.Filename = fileHeader.Filename
	in.ContentType = fileHeader.Header.Get("Content-Type")
	in.Data = data
	return in, nil
}

// validateImageUpload rejects uploads whose declared content type is not
// on the image whitelist.
func validateImageUpload(in service.AssetUploadInput, upload config.UploadConfig) error {
	if in.ContentType == "" {
		return nil
	}
	if !upload.AllowsImageType(in.ContentType) {
		return fmt.Errorf("content type %q is not allowed for images", in.ContentType)
	}
	return nil
}

func writeBadRequest(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
		Code:  consts.StatusBadRequest,
		Msg:   err.Error(),
		Error: err.Error(),
	})
}

func writeNotFound(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
		Code:  consts.StatusNotFound,
		Msg:   err.Error(),
		Error: err.Error(),
	})
}

func writeForbidden(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
		Code:  consts.StatusForbidden,
		Msg:   err.Error(),
		Error: err.Error(),
	})
}

func writeInternalError(c *app.RequestContext, err error) {
	c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
		Code:  consts.StatusInternalServerError,
		Msg:   "internal error",
		Error: err.Error(),
	})
}

// writeServiceError maps service sentinels onto HTTP-shaped responses.
func writeServiceError(c *app.RequestContext, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrScreenshotNotFound),
		errors.Is(err, service.ErrAssetNotFound):
		writeNotFound(c, err)
	case errors.Is(err, service.ErrNotOwner):
		writeForbidden(c, err)
	case errors.Is(err, service.ErrInvalidTitle),
		errors.Is(err, service.ErrInvalidFilename),
		errors.Is(err, service.ErrBlankQuery):
		writeBadRequest(c, err)
	default:
		writeInternalError(c, err)
	}
}

func respondOK(c *app.RequestContext) {
	c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
		Code: consts.StatusOK,
		Msg:  http.StatusText(consts.StatusOK),
	})
}

func respondData(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, pkgcommon.CommonResponse{
		Code: consts.StatusOK,
		Msg:  http.StatusText(consts.StatusOK),
		Data: data,
	})
}

// Ping reports liveness.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, map[string]string{"message": "pong"})
}
