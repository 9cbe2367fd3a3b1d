package entity

import "errors"

var (
	// ErrNotFound is returned when a lookup or update targets an id or
	// email with no matching row.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a uniqueness constraint would be
	// violated and no in-repository fallback applies.
	ErrConflict = errors.New("record already exists")
)
