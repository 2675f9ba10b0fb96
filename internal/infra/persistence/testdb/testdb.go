// Package testdb opens throwaway in-memory SQLite databases carrying the
// storefront schema, for repository and use case tests.
package testdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated database private to the test. A single pooled
// connection keeps the shared-cache database alive until cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	db = postgres.Prepare(db, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, postgres.Migrate(context.Background(), db))

	return db
}
