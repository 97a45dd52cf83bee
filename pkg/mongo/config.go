package mongo

import "time"

// Config holds MongoDB catalog source settings. Variable names are relative
// to the prefix of the enclosing config, e.g. L10N_MONGO_URL.
type Config struct {
	ConnectionURL  string        `env:"URL"`                                   // ConnectionURL is the URL of the database.
	Database       string        `env:"DATABASE" envDefault:"l10n"`            // Database holds the catalog collection.
	Collection     string        `env:"COLLECTION" envDefault:"l10n_catalogs"` // Collection stores one document per catalog.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`      // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize    uint64        `env:"MAX_POOL_SIZE" envDefault:"10"`         // MaxPoolSize is the maximum number of connections in the connection pool.
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`         // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"2s"`        // RetryInterval is the interval between retry attempts.
}
