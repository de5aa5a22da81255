package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Errors every ProductRepository backend reports, whatever its storage.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)

// MapPgError turns Postgres constraint failures into the errors above: a duplicate
// product name becomes ErrAlreadyExists, check and serialization failures
// ErrConflict, as do foreign key violations. Other errors are returned unchanged.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.SerializationFailure:
			return ErrConflict
		}
	}
	return err
}
