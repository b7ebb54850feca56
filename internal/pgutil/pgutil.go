// Package pgutil maps PostgreSQL driver errors onto the application error taxonomy.
package pgutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
)

// reKeyField extracts the column from "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// MapError classifies err for the operation described by op:
//   - sql.ErrNoRows → ErrNotFound
//   - unique violation → ErrConflict (with the offending column when known)
//   - foreign key / check / not-null violations → ErrInvalidRequest
//   - anything else → ErrUnavailable
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if field := conflictField(pgErr); field != "" {
				return fmt.Errorf("%s: %s already exists: %w", op, field, apperrors.ErrConflict)
			}
			return fmt.Errorf("%s: %w", op, apperrors.ErrConflict)
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return fmt.Errorf("%s: %w", op, apperrors.ErrInvalidRequest)
		}
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return apperrors.Unavailable(err, "%s", op)
}

func conflictField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return m[1]
	}
	return ""
}
