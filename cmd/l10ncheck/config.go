package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
	"github.com/dmitrymomot/l10ncheck/pkg/httpserver"
	"github.com/dmitrymomot/l10ncheck/pkg/mongo"
	"github.com/dmitrymomot/l10ncheck/pkg/pg"
	"github.com/dmitrymomot/l10ncheck/pkg/redis"
)

// Catalog sources.
const (
	SourceFS       = "fs"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
	SourceMongo    = "mongo"
	SourceS3       = "s3"
)

// Config is read from L10N_* environment variables; command-line flags
// override it.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`

	Manifests []string `env:"MANIFEST" envSeparator:","`
	Source    string   `env:"SOURCE" envDefault:"fs" validate:"oneof=fs redis postgres mongo s3"`
	Dir       string   `env:"CATALOG_DIR" envDefault:"."`
	Formats   []string `env:"CATALOG_FORMATS" envSeparator:"," envDefault:"yaml,json,properties" validate:"dive,oneof=yaml yml json properties"`
	CacheSize int      `env:"CACHE_SIZE" envDefault:"256" validate:"gte=0"`

	ReportFormat string   `env:"FORMAT" envDefault:"text" validate:"oneof=text json markdown md"`
	Ignore       []string `env:"IGNORE" envSeparator:","`

	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE" envDefault:"300ms"`

	Metrics  httpserver.Config `envPrefix:"METRICS_"`
	Redis    redis.Config      `envPrefix:"REDIS_"`
	Postgres pg.Config         `envPrefix:"PG_"`
	Mongo    mongo.Config      `envPrefix:"MONGO_"`
	S3       catalog.S3Config  `envPrefix:"S3_"`
}

var configValidator = validator.New()

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s has invalid value %v", ErrInvalidConfig, fe.Namespace(), fe.Value())
	}
	return errors.Join(ErrInvalidConfig, err)
}
