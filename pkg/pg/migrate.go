package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationsDir is the directory of the embedded catalog schema migrations.
const MigrationsDir = "migrations"

// goose keeps its settings in package globals.
var gooseMu sync.Mutex

// Migrations returns the embedded migrations creating the l10n_catalogs and
// l10n_catalog_entries tables read by catalog.PostgresLoader.
func Migrations() embed.FS { return migrations }

// Migrate applies the embedded catalog schema migrations using goose.
// goose needs database/sql, so the pool is bridged through pgx/stdlib.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close database connection", "error", err)
		}
	}(db)

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(NewGooseLogger(log))
	goose.SetTableName(MigrationsTable(cfg))

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// MigrationsTable returns the goose version table name, defaulting to
// l10n_schema_migrations.
func MigrationsTable(cfg Config) string {
	if cfg.MigrationsTable == "" {
		return "l10n_schema_migrations"
	}
	return cfg.MigrationsTable
}

// slogAdapter routes goose's Printf-style output to a structured logger.
type slogAdapter struct {
	log *slog.Logger
}

// NewGooseLogger adapts log to goose.Logger.
func NewGooseLogger(log *slog.Logger) goose.Logger {
	return &slogAdapter{log: log}
}

func (a *slogAdapter) Fatalf(format string, v ...any) {
	a.log.Error(fmt.Sprintf(format, v...))
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.log.Info(fmt.Sprintf(format, v...))
}
