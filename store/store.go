// Package store is the sqlite-backed persistence layer. Loads return full
// snapshots of a record kind, saves are upserts keyed by id.
package store

import (
	"database/sql"
	"errors"
	"strings"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the database handle with typed load/save/delete operations.
// It satisfies the recurrence engine's Store interface.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
