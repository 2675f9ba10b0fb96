// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"mime/multipart"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadField is the multipart field carrying uploaded images.
const uploadField = "file"

// pathID parses a UUID path parameter. Malformed ids cannot match any row,
// so they are reported as not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}

// bindAndValidate decodes the request body into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// formUpload opens the uploaded file of a multipart request. The caller
// closes the returned file.
func formUpload(c echo.Context) (*usecase.MediaUpload, multipart.File, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open upload")
	}

	return &usecase.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, file, nil
}
