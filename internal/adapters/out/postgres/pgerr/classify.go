// Package pgerr maps store errors onto the errs taxonomy so repositories
// report constraint problems the same way regardless of the driver.
package pgerr

import (
	"errors"

	"purchasing/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// Classify wraps constraint violations into errs types and returns other
// errors unchanged. param names the field or entity the caller was writing.
func Classify(err error, param string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(param, id, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
			return errs.NewValueIsInvalidErrorWithCause(param, err)
		}
	}
	return err
}

// IsUniqueViolation reports a duplicate key from either driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
