package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultMaxUploadSize int64 = 5 << 20

// Media key prefixes inside the bucket.
const (
	productImagePrefix = "products"
	shopAvatarPrefix   = "shops/avatars"
)

// imageExtensions lists the accepted image content types.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// mediaUploader validates image uploads and stores them under
// content-addressed keys.
type mediaUploader struct {
	storage service.MediaStorage
	maxSize int64
}

func newMediaUploader(storage service.MediaStorage, cfg *config.Config, logger *slog.Logger) *mediaUploader {
	maxSize := defaultMaxUploadSize
	if cfg != nil && cfg.Media != nil && cfg.Media.MaxUploadSize != "" {
		parsed, err := util.ParseBytes(cfg.Media.MaxUploadSize)
		if err != nil {
			logger.Warn("Invalid media upload size, using default",
				slog.String("configured", cfg.Media.MaxUploadSize),
				slog.String("default", util.FormatBytes(defaultMaxUploadSize)))
		} else {
			maxSize = parsed
		}
	}

	return &mediaUploader{storage: storage, maxSize: maxSize}
}

// Store checks the upload and saves it under prefix/entityID. It returns the public URL.
func (u *mediaUploader) Store(ctx context.Context, prefix string, entityID uuid.UUID, upload *usecase.MediaUpload) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", domainerrors.ErrUnsupportedMedia.WithDetails("no file uploaded")
	}
	if upload.Size > u.maxSize {
		return "", domainerrors.ErrUnsupportedMedia.WithDetails("file exceeds " + util.FormatBytes(u.maxSize))
	}

	content, err := io.ReadAll(io.LimitReader(upload.Content, u.maxSize+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}
	if int64(len(content)) > u.maxSize {
		return "", domainerrors.ErrUnsupportedMedia.WithDetails("file exceeds " + util.FormatBytes(u.maxSize))
	}

	contentType := http.DetectContentType(content)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", domainerrors.ErrUnsupportedMedia.WithDetails("detected content type " + contentType)
	}

	checksum, err := util.ContentChecksum(bytes.NewReader(content))
	if err != nil {
		return "", err
	}

	url, err := u.storage.Save(ctx, prefix+"/"+entityID.String()+"/"+checksum+ext, contentType, bytes.NewReader(content))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrMediaStorageFailed, err.Error())
	}

	return url, nil
}

// Remove deletes a previously stored file. Unknown URLs are ignored.
func (u *mediaUploader) Remove(ctx context.Context, url string) error {
	key, ok := u.storage.KeyFromURL(url)
	if !ok {
		return nil
	}

	return u.storage.Delete(ctx, key)
}
