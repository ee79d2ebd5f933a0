package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/config"
)

// Open connects the record store selected by cfg.DBDriver. The returned
// function releases every resource behind the handle. SQLite files are
// migrated on open; PostgreSQL is migrated with cmd/migrate.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*sqlx.DB, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		db := OpenPostgres(pool)
		return db, func() {
			db.Close()
			pool.Close()
		}, nil

	case config.DriverSQLite:
		db, err := OpenSQLite(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		if err := MigrateUp(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
