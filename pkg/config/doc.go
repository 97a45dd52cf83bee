// Package config loads l10ncheck settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Load reads the default `.env` file once (if present) plus any explicitly
//     requested files, then parses the environment into a struct using field
//     tags.
//   - Every variable is read with the L10N_ prefix, so a field tagged
//     `env:"LOG_LEVEL"` is populated from L10N_LOG_LEVEL. Nested structs use
//     `envPrefix` to compose names such as L10N_REDIS_URL.
//   - MustLoad panics on failure for programs that cannot start without
//     configuration.
//
// # Usage
//
//	type Config struct {
//	    Source string       `env:"SOURCE" envDefault:"fs"`
//	    Redis  redis.Config `envPrefix:"REDIS_"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, ".env.ci"); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
//   - ErrParsingConfig: failed to parse env vars into struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
