package pg

import "time"

// Config holds PostgreSQL catalog source settings. Variable names are relative
// to the prefix of the enclosing config, e.g. L10N_PG_URL.
type Config struct {
	ConnectionString string        `env:"URL"`                                // ConnectionString is the connection string to the database.
	MaxConns         int32         `env:"MAX_CONNS" envDefault:"4"`           // MaxConns is the maximum number of pooled connections.
	MinConns         int32         `env:"MIN_CONNS" envDefault:"0"`           // MinConns is the number of connections kept open.
	MaxConnIdleTime  time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"5m"` // MaxConnIdleTime is the maximum time a connection may be idle before it is closed.

	RetryAttempts int           `env:"RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval time.Duration `env:"RETRY_INTERVAL" envDefault:"2s"` // RetryInterval is the base interval between retry attempts.

	AutoMigrate     bool   `env:"AUTO_MIGRATE" envDefault:"false"`                      // AutoMigrate creates the catalog tables on connect.
	MigrationsTable string `env:"MIGRATIONS_TABLE" envDefault:"l10n_schema_migrations"` // MigrationsTable stores the applied migration version.
}
