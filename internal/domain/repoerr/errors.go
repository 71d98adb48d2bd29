package repoerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// The closed set of error kinds the repository layer reports. Callers
// classify with errors.Is; no raw driver error crosses this boundary.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("duplicate record")
	ErrForeignKey    = errors.New("referenced record not found")
	ErrSerialization = errors.New("value serialization failed")
	ErrDatabase      = errors.New("database error")
)

// Postgres SQLSTATE codes for constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Map translates a store error into one of the taxonomy kinds. NotFound is
// a logical outcome, not a constraint signal: repositories raise it
// themselves, Map only covers gorm's record-not-found sentinel.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%w: %s", ErrDatabase, err.Error())
}
