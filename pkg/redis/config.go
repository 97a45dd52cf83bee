package redis

import "time"

// Config holds Redis catalog source settings. Variable names are relative to
// the prefix of the enclosing config, e.g. L10N_REDIS_URL.
type Config struct {
	ConnectionURL  string        `env:"URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL is in the format "redis://:password@localhost:6379/0".
	KeyPrefix      string        `env:"KEY_PREFIX" envDefault:"l10n"`              // KeyPrefix is prepended to catalog hash keys.
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"2s"`            // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`          // ConnectTimeout bounds the whole connection procedure.
}
