package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraint marks a write rejected by a database integrity constraint
// (foreign key, not null, check). Callers treat it as an internal failure; the
// wrapped message names the constraint for the logs.
var ErrConstraint = errors.New("restricción de integridad violada")

// wrapErr tags Postgres integrity violations (SQLSTATE class 23) with
// ErrConstraint and passes every other error through unchanged.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %s (%s): %w", ErrConstraint, pgErr.ConstraintName, pgErr.Code, err)
	}
	return err
}
