// Package pg connects l10ncheck to PostgreSQL catalogs using pgx/v5 and ships
// the schema read by catalog.PostgresLoader as embedded goose migrations.
//
//   - Config is populated from L10N_PG_* environment variables.
//   - Connect opens a *pgxpool.Pool, retrying with a growing pause until the
//     database answers.
//   - Migrate creates l10n_catalogs and l10n_catalog_entries if needed.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if cfg.AutoMigrate {
//	    if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	        return err
//	    }
//	}
//
//	loader := catalog.NewPostgresLoader(pool)
package pg
