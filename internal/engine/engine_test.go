package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/emberdb/ember/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Config{
		Logger: log.NewNopLogger(),
		Path:   filepath.Join(t.TempDir(), "test.sqlite"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	t.Run("MissingLogger", func(t *testing.T) {
		_, err := Open(Config{Path: "test.sqlite"})
		assert.Error(t, err)
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := Open(Config{Logger: log.NewNopLogger()})
		assert.Error(t, err)
	})

	t.Run("MissingParentDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does", "not", "exist", "test.sqlite")
		_, err := Open(Config{Logger: log.NewNopLogger(), Path: path})
		assert.Error(t, err)
	})

	t.Run("CreatesDatabaseFile", func(t *testing.T) {
		db := newTestDB(t)
		assert.NotNil(t, db)
	})
}

func TestClose(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.Close())
	assert.NoError(t, db.Close())
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("StatementYieldsNoResult", func(t *testing.T) {
		db := newTestDB(t)
		res, err := db.Execute(ctx, "CREATE TABLE users (id INTEGER, name TEXT)")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("EmptyQueryYieldsNoResult", func(t *testing.T) {
		db := newTestDB(t)
		res, err := db.Execute(ctx, "   ")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("ReadYieldsMaterializedRows", func(t *testing.T) {
		db := newTestDB(t)
		_, err := db.Execute(ctx, "CREATE TABLE users (id INTEGER, name TEXT)")
		require.NoError(t, err)
		_, err = db.Execute(ctx, `INSERT INTO users VALUES (1, 'ada'), (2, 'brian')`)
		require.NoError(t, err)

		res, err := db.Execute(ctx, "SELECT id, name FROM users ORDER BY id")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, []string{"id", "name"}, res.Columns)
		require.Len(t, res.Rows, 2)
		assert.Equal(t, int64(1), res.Rows[0][0])
		assert.Equal(t, "ada", res.Rows[0][1])
	})

	t.Run("SyntaxErrorSurfacesEngineMessage", func(t *testing.T) {
		db := newTestDB(t)
		_, err := db.Execute(ctx, "SELEC 1")
		assert.Error(t, err)
	})

	t.Run("ClosedDatabase", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.Close())
		_, err := db.Execute(ctx, "SELECT 1")
		assert.Error(t, err)
	})
}
