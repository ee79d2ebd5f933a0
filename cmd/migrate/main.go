package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/config"
	"github.com/sample-hr/employee-admin/internal/database"
)

func main() {
	flag.Parse()

	// Load config
	cfg := config.Load()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return
	}

	db, err := open(cfg)
	if err != nil {
		log.Fatalf("Open %s store: %v", cfg.DBDriver, err)
	}

	// Closing the migrator closes db.
	m, err := database.NewMigrator(db)
	if err != nil {
		log.Fatalf("Migration failed to initialize: %v", err)
	}
	defer m.Close()

	command := args[0]
	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Up failed: %v", err)
		}
		fmt.Println("Migrated up successfully")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Down failed: %v", err)
		}
		fmt.Println("Migrated down successfully")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("Version failed: %v", err)
		}
		fmt.Printf("Version: %d, Dirty: %t\n", version, dirty)
	case "force":
		if len(args) < 2 {
			log.Fatal("force requires version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("Invalid version: %v", err)
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("Force failed: %v", err)
		}
		fmt.Printf("Forced version to %d\n", v)
	default:
		printUsage()
	}
}

// open connects without migrating so every command sees the schema as it is.
func open(cfg *config.Config) (*sqlx.DB, error) {
	ctx := context.Background()
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg, zerolog.Nop())
		if err != nil {
			return nil, err
		}
		return database.OpenPostgres(pool), nil
	case config.DriverSQLite:
		return database.OpenSQLite(ctx, cfg.SQLitePath, zerolog.Nop())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("Commands: up, down, version, force <version>")
	fmt.Println("The store is selected by DB_DRIVER, DATABASE_URL and SQLITE_PATH.")
}
