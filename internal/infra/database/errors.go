package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/dentalhub/leads-api/internal/entity"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// mapError translates driver-level failures into the sentinel errors the
// rest of the service matches on. Storage identifiers and query text never
// leave this package.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entity.ErrConflict
	}
	return err
}

// nullString maps "" to NULL so the schema's own defaults and COALESCE
// clauses apply.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
