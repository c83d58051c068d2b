package store

import "fmt"

// schema creates the entry table. Column names match files written by
// earlier actstore releases, so an existing ~/actstore.db opens unchanged.
// key carries no UNIQUE constraint: legacy files may already hold duplicate
// rows and a unique index could not be built over them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS astore (
    key   TEXT,
    value TEXT,
    note  TEXT DEFAULT ''
)`,
}

// Initialize ensures the entry table exists. It is idempotent and safe to
// call against a brand new database file.
func (db *DB) Initialize() error {
	tx, err := db.Begin()
	if err != nil {
		return &StorageError{Op: "begin initialize", Err: err}
	}
	for i, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return &StorageError{Op: fmt.Sprintf("initialize statement %d", i+1), Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit initialize", Err: err}
	}
	return nil
}
