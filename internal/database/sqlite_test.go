package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_Migrates(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "exp.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(ctx, db))

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'settings'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "settings", name)

	var pool Pool = SQLiteDB{DB: db}
	assert.NoError(t, pool.Ping(ctx))
}

func TestOpenSQLite_BadPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "exp.db"))
	assert.Error(t, err)
}
