// Package storage keeps uploaded media in a gocloud.dev blob bucket
// (local directory, in-memory, GCS or S3 depending on the bucket URL).
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// blobStorage implements service.MediaStorage on a blob.Bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket. Keys are exposed under publicBaseURL.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Params holds dependencies for the media storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens the configured bucket and closes it on shutdown.
func NewMediaStorage(params Params) (service.MediaStorage, error) {
	bucketURL, publicBaseURL := defaultBucketURL, ""
	if media := params.Config.Media; media != nil {
		if media.BucketURL != "" {
			bucketURL = media.BucketURL
		}
		publicBaseURL = media.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", bucketURL)
	}

	params.Logger.Info("Media bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, publicBaseURL), nil
}

// Save writes the content and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.urlFor(key), nil
}

// Open streams a stored object.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrMediaNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes a stored object, ignoring missing keys.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// KeyFromURL strips the public prefix from a URL produced by Save.
func (s *blobStorage) KeyFromURL(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	if s.publicBaseURL == "" {
		return url, true
	}

	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || key == "" {
		return "", false
	}

	return key, true
}

func (s *blobStorage) urlFor(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
