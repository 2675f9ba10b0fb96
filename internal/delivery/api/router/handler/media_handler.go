package handler

import (
	"io"
	"net/http"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.MediaStorage
}

// MediaHandler serves stored uploads when the bucket is not public.
type MediaHandler struct {
	storage service.MediaStorage
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{storage: params.Storage}
}

// Serve streams the object named by the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return domainerrors.ErrNotFound
	}

	reader, contentType, err := h.storage.Open(c.Request().Context(), key)
	if errors.Is(err, service.ErrMediaNotFound) {
		return domainerrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().WriteHeader(http.StatusOK)

	_, err = io.Copy(c.Response(), reader)

	return errors.WithStack(err)
}
