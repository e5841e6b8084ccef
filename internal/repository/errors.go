package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Typed persistence conditions. Everything a repository returns is one of
// these sentinels (wrapped with context) or a generic wrapped store error;
// nothing is process-fatal.
var (
	// ErrNotFound signals that the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate value")
	// ErrForeignKey signals a foreign-key violation, either a write
	// referencing a missing row or a delete restricted by referencing rows.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrWriteConflict signals that the row changed between read and write.
	ErrWriteConflict = errors.New("write conflict")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapConstraintErr translates store-specific constraint failures into the
// typed conditions above, keeping the original failure as context.
// Unrecognized errors pass through unchanged.
func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %v", ErrForeignKey, err)
		}
	}
	return err
}
