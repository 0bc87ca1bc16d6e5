package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapErr_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_products_category"}
	err := wrapErr(fmt.Errorf("insert: %w", pgErr))

	assert.ErrorIs(t, err, ErrConstraint)
	assert.Contains(t, err.Error(), "fk_products_category")

	var got *pgconn.PgError
	assert.True(t, errors.As(err, &got))
}

func TestWrapErr_PassesOtherErrorsThrough(t *testing.T) {
	assert.NoError(t, wrapErr(nil))

	err := wrapErr(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrConstraint)

	conn := &pgconn.PgError{Code: "08006"}
	assert.NotErrorIs(t, wrapErr(conn), ErrConstraint)
}
