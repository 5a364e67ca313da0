package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"

	"github.com/fastprodman/aura/internal/config"
	"github.com/fastprodman/aura/internal/infra/logging"
	"github.com/fastprodman/aura/internal/infra/pgutils"
	"github.com/fastprodman/aura/pkg/envconf"
)

//go:embed migrations/*.sql
var baseFS embed.FS

//go:embed test_data/*.sql
var devFS embed.FS

const (
	baseTable = "schema_migrations"
	// seeds keep their own version history so they can be numbered
	// independently of the schema
	seedTable = "seed_migrations"
)

type migratorConfig struct {
	Postgres config.PostgresConfig
	LogLevel slog.Level `env:"APP_LOG_LEVEL" default:"INFO"`
	AppEnv   string     `env:"APP_ENV" default:"PROD"`
}

func main() {
	err := migrateAll()
	if err != nil {
		slog.Error("migration run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migration run finished successfully")
}

func migrateAll() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg := new(migratorConfig)

	err = envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	//nolint:errcheck
	defer db.Close()

	err = runMigrations(db, baseFS, "migrations", baseTable)
	if err != nil {
		return fmt.Errorf("base migrations failed: %w", err)
	}

	slog.Info("base migrations applied")

	if cfg.AppEnv == "DEV" {
		err = runMigrations(db, devFS, "test_data", seedTable)
		if err != nil {
			return fmt.Errorf("dev seed migrations failed: %w", err)
		}

		slog.Info("dev seed migrations applied")
	}

	return nil
}

func runMigrations(db *sql.DB, fsys embed.FS, dir, table string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: table})
	if err != nil {
		return fmt.Errorf("init postgres driver: %w", err)
	}

	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up: %w", err)
	}

	return nil
}
