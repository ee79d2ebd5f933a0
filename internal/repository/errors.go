package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no record matches a lookup or an update.
var ErrNotFound = errors.New("record not found")

// StoreFault wraps a failure of the underlying store. Code carries the
// SQLSTATE when the store is PostgreSQL.
type StoreFault struct {
	Op   string
	Code string
	Err  error
}

func (f *StoreFault) Error() string {
	if f.Code != "" {
		return fmt.Sprintf("%s: %v (sqlstate %s)", f.Op, f.Err, f.Code)
	}
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *StoreFault) Unwrap() error { return f.Err }

// IsStoreFault reports whether err came from the store rather than from a
// missing record.
func IsStoreFault(err error) bool {
	var f *StoreFault
	return errors.As(err, &f)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	f := &StoreFault{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		f.Code = pgErr.Code
	}
	return f
}
