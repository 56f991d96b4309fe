package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// StoreError wraps a failure reported by the database. Op names the
// operation that failed, e.g. "create contact message".
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// wrap converts a driver error into the repository's error vocabulary.
// pgx.ErrNoRows becomes ErrNotFound; anything else becomes a *StoreError.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return &StoreError{Op: op, Err: err}
}
