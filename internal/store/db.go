package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection to the actstore SQLite database.
type DB struct {
	*sql.DB
	Path string
	log  *zap.Logger
}

// DefaultDBPath returns the default database path: ~/actstore.db
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, "actstore.db"), nil
}

// Open opens (or creates) the SQLite database at the given path,
// configures pragmas, and initializes the entry table.
func Open(path string, log *zap.Logger) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "create db dir", Err: err}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "open sqlite", Err: err}
	}
	return setup(sqlDB, path, log)
}

// OpenMemory opens an in-memory SQLite database for testing.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, &StorageError{Op: "open sqlite memory", Err: err}
	}
	// Every pooled connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	return setup(sqlDB, ":memory:", zap.NewNop())
}

func setup(sqlDB *sql.DB, path string, log *zap.Logger) (*DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db := &DB{DB: sqlDB, Path: path, log: log.Named("store")}
	if err := db.configurePragmas(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := db.Initialize(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	db.log.Debug("database ready", zap.String("path", path))
	return db, nil
}

func (db *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return &StorageError{Op: fmt.Sprintf("pragma %q", p), Err: err}
		}
	}
	return nil
}
