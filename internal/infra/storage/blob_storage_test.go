package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "https://cdn.example.com/media/")
	ctx := context.Background()

	url, err := store.Save(ctx, "shops/avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/shops/avatar.png", url)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "shops/avatar.png", key)

	reader, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))

	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, service.ErrMediaNotFound)
}

func TestBlobStorage_KeyFromURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "https://cdn.example.com/media")

	_, ok := store.KeyFromURL("")
	assert.False(t, ok)

	_, ok = store.KeyFromURL("https://elsewhere.example.com/a.png")
	assert.False(t, ok)

	bare := NewBlobStorage(bucket, "")
	key, ok := bare.KeyFromURL("products/x.png")
	assert.True(t, ok)
	assert.Equal(t, "products/x.png", key)
}
