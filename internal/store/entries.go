package store

import (
	"database/sql"

	"go.uber.org/zap"
)

// Entry is a stored key with its value and optional note. An empty Note
// means the entry has no note.
type Entry struct {
	Key   string
	Value string
	Note  string
}

// SetResult reports whether Set wrote a new entry or changed an existing one.
type SetResult int

const (
	Created SetResult = iota
	Updated
)

func (r SetResult) String() string {
	if r == Updated {
		return "updated"
	}
	return "created"
}

// Exists reports whether at least one entry has the given key.
func (db *DB) Exists(key string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM astore WHERE key = ?)`, key).Scan(&exists)
	if err != nil {
		return false, &StorageError{Op: "check entry", Err: err}
	}
	return exists, nil
}

// Get returns the entry for key, or nil if there is none. When duplicate
// rows share the key, the first one in storage order wins.
func (db *DB) Get(key string) (*Entry, error) {
	var e Entry
	err := db.QueryRow(`
		SELECT key, COALESCE(value, ''), COALESCE(note, '')
		FROM astore WHERE key = ? ORDER BY rowid LIMIT 1
	`, key).Scan(&e.Key, &e.Value, &e.Note)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "get entry", Err: err}
	}
	return &e, nil
}

// List returns every entry in storage order.
func (db *DB) List() ([]Entry, error) {
	rows, err := db.Query(`
		SELECT COALESCE(key, ''), COALESCE(value, ''), COALESCE(note, '')
		FROM astore ORDER BY rowid
	`)
	if err != nil {
		return nil, &StorageError{Op: "list entries", Err: err}
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value, &e.Note); err != nil {
			return nil, &StorageError{Op: "scan entry", Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list entries", Err: err}
	}
	return entries, nil
}

// Set updates the value of every row with the given key, leaving notes
// alone, or inserts a new entry with an empty note when none exists.
// The check and the write share one transaction so Set never adds a
// second row for a key it can see.
func (db *DB) Set(key, value string) (SetResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return Created, &StorageError{Op: "begin set", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE astore SET value = ? WHERE key = ?`, value, key)
	if err != nil {
		return Created, &StorageError{Op: "update entry", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Created, &StorageError{Op: "update entry", Err: err}
	}

	result := Updated
	if n == 0 {
		if _, err := tx.Exec(`INSERT INTO astore (key, value, note) VALUES (?, ?, '')`, key, value); err != nil {
			return Created, &StorageError{Op: "insert entry", Err: err}
		}
		result = Created
	}

	if err := tx.Commit(); err != nil {
		return Created, &StorageError{Op: "commit set", Err: err}
	}
	db.log.Debug("set", zap.String("key", key), zap.Stringer("result", result), zap.Int64("rows", n))
	return result, nil
}

// SetNote replaces the note on every row with the given key. It returns
// ErrNotFound and writes nothing if the key has no entry.
func (db *DB) SetNote(key, note string) error {
	res, err := db.Exec(`UPDATE astore SET note = ? WHERE key = ?`, note, key)
	if err != nil {
		return &StorageError{Op: "update note", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "update note", Err: err}
	}
	if n == 0 {
		return ErrNotFound
	}
	db.log.Debug("note", zap.String("key", key), zap.Int64("rows", n))
	return nil
}

// Delete removes every row with the given key. It returns ErrNotFound if
// the key has no entry.
func (db *DB) Delete(key string) error {
	res, err := db.Exec(`DELETE FROM astore WHERE key = ?`, key)
	if err != nil {
		return &StorageError{Op: "delete entry", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "delete entry", Err: err}
	}
	if n == 0 {
		return ErrNotFound
	}
	db.log.Debug("delete", zap.String("key", key), zap.Int64("rows", n))
	return nil
}
