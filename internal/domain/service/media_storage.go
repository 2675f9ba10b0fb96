package service

import (
	"context"
	"errors"
	"io"
)

// ErrMediaNotFound is returned when no object is stored under a key.
var ErrMediaNotFound = errors.New("media not found")

// MediaStorage stores uploaded images and returns their public location.
type MediaStorage interface {
	// Save writes the content under key and returns the URL it is served from.
	Save(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Open streams the object stored under key together with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a URL returned by Save back to its key.
	KeyFromURL(url string) (string, bool)
}
