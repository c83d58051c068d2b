package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMemory(t *testing.T) {
	db := testDB(t)
	assert.Equal(t, ":memory:", db.Path)
}

func TestTableExists(t *testing.T) {
	db := testDB(t)

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", "astore",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "astore", name)
}

func TestInitializeIdempotent(t *testing.T) {
	db := testDB(t)

	_, err := db.Set("k", "v")
	require.NoError(t, err)

	require.NoError(t, db.Initialize())
	require.NoError(t, db.Initialize())

	e, err := db.Get("k")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "v", e.Value)
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "actstore.db")

	db, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	_, err = db.Set("foo", "bar")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	db, err = Open(path, nil)
	require.NoError(t, err)
	defer db.Close()

	e, err := db.Get("foo")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, Entry{Key: "foo", Value: "bar"}, *e)
}

// A file written by older releases has no column defaults and may carry
// duplicate keys.
func TestOpenLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actstore.db")

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE astore (key TEXT, value TEXT, note TEXT)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO astore VALUES ('dup', 'first', ''), ('dup', 'second', ''), ('nn', 'x', NULL)`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := Open(path, nil)
	require.NoError(t, err)
	defer db.Close()

	e, err := db.Get("dup")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "first", e.Value)

	e, err = db.Get("nn")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "", e.Note)

	entries, err := db.List()
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestStorageErrorUnwrap(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Close())

	_, err := db.Get("k")
	require.Error(t, err)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "get entry", se.Op)
	assert.NotNil(t, se.Unwrap())
}
