package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "L10N_"

var defaultEnvLoaded sync.Once

// LoadEnv reads the given .env files into the process environment.
// Variables already present in the environment are not overwritten, and
// earlier files take precedence over later ones.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses L10N_* environment variables into v.
//
// The default .env file in the working directory is read once per process if
// it exists. Additional envFiles must exist.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"` // L10N_LOG_LEVEL
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if err := LoadEnv(envFiles...); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
