package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/language"
)

const (
	catalogExistsQuery = `SELECT EXISTS (SELECT 1 FROM l10n_catalogs WHERE name = $1 AND locale = $2)`

	catalogEntriesQuery = `SELECT key, value FROM l10n_catalog_entries WHERE catalog_name = $1 AND locale = $2`
)

// PostgresQuerier is the subset of pgx used by PostgresLoader.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type PostgresQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresLoader reads catalogs from the l10n_catalogs and l10n_catalog_entries
// tables created by the pg package migrations. A row in l10n_catalogs marks the
// catalog as existing, so empty catalogs can be represented.
// Locales are stored in BCP 47 form ("fr-CA").
type PostgresLoader struct {
	db PostgresQuerier
}

// NewPostgresLoader panics if db is nil.
func NewPostgresLoader(db PostgresQuerier) *PostgresLoader {
	if db == nil {
		panic("catalog: postgres loader requires a querier")
	}
	return &PostgresLoader{db: db}
}

// Load implements the Loader interface
func (l *PostgresLoader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	var exists bool
	if err := l.db.QueryRow(ctx, catalogExistsQuery, name, locale.String()).Scan(&exists); err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := l.db.Query(ctx, catalogEntriesQuery, name, locale.String())
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Join(ErrFailedToReadCatalog, err)
		}
		entries[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	return New(name, locale, entries), nil
}
