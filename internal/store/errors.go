package store

import "errors"

// ErrNotFound is returned by writes that target a key with no entry.
var ErrNotFound = errors.New("entry not found")

// StorageError wraps any failure of the backing database. It is fatal for
// the invocation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
