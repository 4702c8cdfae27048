package movies

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates no movie has the requested id.
	ErrNotFound = errors.New("movie not found")

	// ErrValidation indicates the request or the stored values violate a constraint.
	ErrValidation = errors.New("validation failed")
)

// mapError classifies database errors: no rows becomes ErrNotFound,
// data exceptions (class 22) and integrity violations (class 23) become
// ErrValidation. Everything else is returned wrapped with op.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")) {
		detail := pgErr.Message
		if pgErr.ColumnName != "" {
			detail = fmt.Sprintf("%s (column %s)", detail, pgErr.ColumnName)
		}
		return fmt.Errorf("%s: %w", detail, ErrValidation)
	}
	return fmt.Errorf("%s: %w", op, err)
}
