package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	t.Run("schema is at the expected version", func(t *testing.T) {
		var version int
		require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
		assert.Equal(t, ExpectedSchemaVersion, version)
	})

	t.Run("migrate is idempotent", func(t *testing.T) {
		require.NoError(t, store.Migrate(ctx))
		require.NoError(t, store.Migrate(ctx))

		var version int
		require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
		assert.Equal(t, ExpectedSchemaVersion, version)
	})

	t.Run("documents table exists", func(t *testing.T) {
		var name string
		err := store.db.QueryRowContext(ctx, `
			SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'documents'
		`).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, "documents", name)
	})
}
