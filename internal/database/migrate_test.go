package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_AppliesMigrationsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reforge.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'reforge_levels'`).Scan(&count))
	assert.Equal(t, 1, count)

	// Re-running is a no-op
	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "  ")
	assert.Error(t, err)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	_, err := migrationDir("oracle")
	assert.Error(t, err)

	dir, err := migrationDir(DialectPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dir)
}
