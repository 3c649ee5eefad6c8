package sqlconfig

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a lookup by key matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert hits a unique constraint.
	ErrConflict = errors.New("record already exists")
)

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
